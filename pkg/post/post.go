package post

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MaxLikeCount = 1000000

	dateLayout = "January 2, 2006"
)

type Post struct {
	Id           primitive.ObjectID `json:"_id" bson:"_id"`
	Title        string             `json:"title" bson:"title"`
	Message      string             `json:"message" bson:"message"`
	Creator      string             `json:"creator" bson:"creator"`
	Tags         []string           `json:"tags" bson:"tags"`
	SelectedFile string             `json:"selectedFile,omitempty" bson:"selectedFile,omitempty"`
	LikeCount    int                `json:"likeCount" bson:"likeCount"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (p Post) FormattedDate() string {
	if p.CreatedAt.IsZero() {
		return ""
	}
	return p.CreatedAt.Format(dateLayout)
}

// MarshalJSON adds the hex `id` and `formattedDate` next to the stored fields.
func (p Post) MarshalJSON() ([]byte, error) {
	type stored Post
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return json.Marshal(struct {
		stored
		HexId         string `json:"id"`
		FormattedDate string `json:"formattedDate,omitempty"`
	}{
		stored:        stored(p),
		HexId:         p.Id.Hex(),
		FormattedDate: p.FormattedDate(),
	})
}

// ParseId accepts the 24 hex characters form of an ObjectID.
func ParseId(s string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(s)
}
