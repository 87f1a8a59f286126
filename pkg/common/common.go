package common

import (
	"encoding/json"
	"log"
	"net/http"
)

type Msg struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteMsg sends a successful confirmation message.
func WriteMsg(w http.ResponseWriter, msg string, code int) {
	WriteJSON(w, code, Msg{Success: true, Message: msg})
}

func WriteJSON(w http.ResponseWriter, code int, data interface{}) {
	resp, err := json.Marshal(data)
	if err != nil {
		log.Println("common: JSON marshaling failed", err)
		code = http.StatusInternalServerError
		resp = []byte(`{"success":false,"message":"response failed","code":"INTERNAL_ERROR"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, err = w.Write(resp)
	if err != nil {
		log.Println("common: failed writing response", err)
	}
}

func WriteRespJSON(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusOK, data)
}
