package post

//go:generate mockgen -source=handlers.go -destination=handlers_mock_test.go -package=post

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	. "postshare/pkg/common"
	"postshare/pkg/logger"
)

type IPostRepo interface {
	GetAll(context.Context) ([]*Post, error)
	GetById(context.Context, primitive.ObjectID) (*Post, error)

	Add(context.Context, *Post) (primitive.ObjectID, error)
	Update(context.Context, primitive.ObjectID, *Patch) (*Post, error)
	Like(context.Context, primitive.ObjectID) (*Post, error)

	Delete(context.Context, primitive.ObjectID) error
}

type PostHandler struct {
	PostRepo IPostRepo
}

func NewPostHandler(postRepo IPostRepo) *PostHandler {
	return &PostHandler{
		PostRepo: postRepo,
	}
}

func (ph *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := ph.PostRepo.GetAll(r.Context())
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load posts from the repo: %v", err)
		WriteErr(w, StoreUnavailable("Failed loading posts").Wrap(err))
		return
	}

	WriteRespJSON(w, posts)
}

func (ph *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postId, ok := pathId(w, r)
	if !ok {
		return
	}

	post, err := ph.PostRepo.GetById(r.Context(), postId)
	if errors.Is(err, ErrNotFound) {
		WriteErr(w, NotFound("Post not found"))
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't get post with id %s: %v", postId.Hex(), err)
		WriteErr(w, StoreUnavailable("Failed loading post").Wrap(err))
		return
	}

	WriteRespJSON(w, post)
}

func (ph *PostHandler) Add(w http.ResponseWriter, r *http.Request) {
	in, errs := readInput(r)
	if len(errs) > 0 {
		WriteErr(w, ValidationFailed(errs))
		return
	}
	if missing := in.Missing(); len(missing) > 0 {
		WriteErr(w, MissingFields(missing))
		return
	}

	post := in.NewPost()
	_, err := ph.PostRepo.Add(r.Context(), post)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't add post to the repo: %v", err)
		WriteErr(w, persistenceErr(PersistenceConflict("Failed creating post"), err))
		return
	}

	WriteJSON(w, http.StatusCreated, post)
}

// Update replaces only the fields sent with a truthy value.
func (ph *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	postId, ok := pathId(w, r)
	if !ok {
		return
	}
	in, errs := readInput(r)
	if len(errs) > 0 {
		WriteErr(w, ValidationFailed(errs))
		return
	}

	updated, err := ph.PostRepo.Update(r.Context(), postId, in.Patch())
	if errors.Is(err, ErrNotFound) {
		WriteErr(w, NotFound("Post not found"))
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't update post %s: %v", postId.Hex(), err)
		WriteErr(w, persistenceErr(ValidationError("Failed updating post"), err))
		return
	}

	WriteRespJSON(w, updated)
}

func (ph *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	postId, ok := pathId(w, r)
	if !ok {
		return
	}

	liked, err := ph.PostRepo.Like(r.Context(), postId)
	if errors.Is(err, ErrNotFound) {
		WriteErr(w, NotFound("Post not found"))
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't like post %s: %v", postId.Hex(), err)
		WriteErr(w, persistenceErr(PersistenceError("Failed liking post"), err))
		return
	}

	WriteRespJSON(w, liked)
}

func (ph *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	postId, ok := pathId(w, r)
	if !ok {
		return
	}

	err := ph.PostRepo.Delete(r.Context(), postId)
	if errors.Is(err, ErrNotFound) {
		WriteErr(w, NotFound("Post not found"))
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("can't remove post %s: %v", postId.Hex(), err)
		WriteErr(w, PersistenceError("Failed deleting post").Wrap(err))
		return
	}

	WriteMsg(w, "Post deleted successfully.", http.StatusOK)
}

func pathId(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	postId, err := ParseId(mux.Vars(r)["post_id"])
	if err != nil {
		WriteErr(w, InvalidId())
		return primitive.NilObjectID, false
	}
	return postId, true
}

// persistenceErr attaches the broken rules, if any, to the response.
func persistenceErr(appErr *AppError, err error) *AppError {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return appErr.With("errors", []string(ve)).Wrap(err)
	}
	return appErr.Wrap(err)
}
