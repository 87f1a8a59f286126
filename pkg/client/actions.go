package client

//go:generate mockgen -source=actions.go -destination=actions_mock_test.go -package=client

import (
	"context"

	"postshare/pkg/post"
)

type ActionType string

const (
	FetchAll     ActionType = "FETCH_ALL"
	Create       ActionType = "CREATE"
	Update       ActionType = "UPDATE"
	Delete       ActionType = "DELETE"
	Like         ActionType = "LIKE"
	StartLoading ActionType = "START_LOADING"
	EndLoading   ActionType = "END_LOADING"
	Error        ActionType = "ERROR"
)

type Action struct {
	Type    ActionType
	Payload interface{}
}

type Dispatcher interface {
	Dispatch(Action)
}

type IPostsAPI interface {
	FetchPosts(context.Context) ([]post.Post, error)
	CreatePost(context.Context, PostFields) (*post.Post, error)
	UpdatePost(context.Context, string, PostFields) (*post.Post, error)
	LikePost(context.Context, string) (*post.Post, error)
	DeletePost(context.Context, string) error
}

// Actions runs one API call per method and reports START_LOADING, the result
// action and END_LOADING. A failure reports ERROR instead of the last two and is
// returned to the caller.
type Actions struct {
	api   IPostsAPI
	store Dispatcher
}

func NewActions(api IPostsAPI, store Dispatcher) *Actions {
	return &Actions{api: api, store: store}
}

func (a *Actions) GetPosts(ctx context.Context) error {
	a.store.Dispatch(Action{Type: StartLoading})
	posts, err := a.api.FetchPosts(ctx)
	if err != nil {
		return a.fail(err)
	}
	a.done(Action{Type: FetchAll, Payload: posts})
	return nil
}

func (a *Actions) CreatePost(ctx context.Context, fields PostFields) error {
	a.store.Dispatch(Action{Type: StartLoading})
	p, err := a.api.CreatePost(ctx, fields)
	if err != nil {
		return a.fail(err)
	}
	a.done(Action{Type: Create, Payload: *p})
	return nil
}

func (a *Actions) UpdatePost(ctx context.Context, id string, fields PostFields) error {
	a.store.Dispatch(Action{Type: StartLoading})
	p, err := a.api.UpdatePost(ctx, id, fields)
	if err != nil {
		return a.fail(err)
	}
	a.done(Action{Type: Update, Payload: *p})
	return nil
}

func (a *Actions) LikePost(ctx context.Context, id string) error {
	a.store.Dispatch(Action{Type: StartLoading})
	p, err := a.api.LikePost(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	a.done(Action{Type: Like, Payload: *p})
	return nil
}

func (a *Actions) DeletePost(ctx context.Context, id string) error {
	a.store.Dispatch(Action{Type: StartLoading})
	if err := a.api.DeletePost(ctx, id); err != nil {
		return a.fail(err)
	}
	a.done(Action{Type: Delete, Payload: id})
	return nil
}

func (a *Actions) done(result Action) {
	a.store.Dispatch(result)
	a.store.Dispatch(Action{Type: EndLoading})
}

func (a *Actions) fail(err error) error {
	a.store.Dispatch(Action{Type: Error, Payload: err.Error()})
	return err
}
