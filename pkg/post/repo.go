package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("post: post not found")

// Patch holds the fields an update replaces. Nil fields are left untouched.
type Patch struct {
	Title        *string
	Message      *string
	Creator      *string
	Tags         *[]string
	SelectedFile *string
}

func (p *Patch) applyTo(post *Post) {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Message != nil {
		post.Message = *p.Message
	}
	if p.Creator != nil {
		post.Creator = *p.Creator
	}
	if p.Tags != nil {
		post.Tags = *p.Tags
	}
	if p.SelectedFile != nil {
		post.SelectedFile = *p.SelectedFile
	}
}

func (p *Patch) set(now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Message != nil {
		set["message"] = *p.Message
	}
	if p.Creator != nil {
		set["creator"] = *p.Creator
	}
	if p.Tags != nil {
		set["tags"] = *p.Tags
	}
	if p.SelectedFile != nil {
		set["selectedFile"] = *p.SelectedFile
	}
	return set
}

type Repo struct {
	posts IMongoCollection
	now   func() time.Time
}

func NewPostRepo(postsCol *mongo.Collection) *Repo {
	return &Repo{
		posts: collection{coll: postsCol},
		now:   time.Now,
	}
}

// EnsureIndexes creates the indexes listing by creator, tag and date rely on.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "creator", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	if _, err := r.posts.CreateIndexes(ctx, models); err != nil {
		return fmt.Errorf("post/repo: failed creating indexes: %w", err)
	}
	return nil
}

func (r *Repo) Add(ctx context.Context, p *Post) (primitive.ObjectID, error) {
	if p.Id.IsZero() {
		p.Id = primitive.NewObjectID()
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	now := r.now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.LikeCount = 0

	if err := p.Validate(); err != nil {
		return primitive.NilObjectID, fmt.Errorf("post/repo: refusing to insert: %w", err)
	}

	_, err := r.posts.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("post/repo: failed inserting a post: %w", err)
	}
	return p.Id, nil
}

func (r *Repo) GetById(ctx context.Context, id primitive.ObjectID) (*Post, error) {
	post := new(Post)
	err := r.posts.FindOne(ctx, bson.M{"_id": id}).Decode(post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("post/repo: failed finding post %s: %w", id.Hex(), err)
	}
	return post, nil
}

func (r *Repo) GetAll(ctx context.Context) ([]*Post, error) {
	cursor, err := r.posts.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("post/repo: failed finding posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []*Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("post/repo: failed geting posts from cursor: %w", err)
	}
	return posts, nil
}

// Update applies patch to the stored post and returns the result. The merged
// document must still satisfy Rules.
func (r *Repo) Update(ctx context.Context, id primitive.ObjectID, patch *Patch) (*Post, error) {
	current, err := r.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.applyTo(current)
	if err := current.Validate(); err != nil {
		return nil, fmt.Errorf("post/repo: refusing to update %s: %w", id.Hex(), err)
	}

	update := bson.M{"$set": patch.set(r.now().UTC())}
	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, update)
}

// Like adds exactly one like. The increment happens at the store, so concurrent
// likes are all counted.
func (r *Repo) Like(ctx context.Context, id primitive.ObjectID) (*Post, error) {
	filter := bson.M{"_id": id, "likeCount": bson.M{"$lt": MaxLikeCount}}
	update := bson.M{
		"$inc": bson.M{"likeCount": 1},
		"$set": bson.M{"updatedAt": r.now().UTC()},
	}
	post, err := r.findOneAndUpdate(ctx, filter, update)
	if !errors.Is(err, ErrNotFound) {
		return post, err
	}

	// Nothing matched: either the post is gone or it is at the like limit.
	if _, getErr := r.GetById(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("post/repo: can't like %s: %w", id.Hex(),
		ValidationErrors{"Like count must be between 0 and 1000000"})
}

func (r *Repo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.posts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("post/repo: failed deleting post: %w", err)
	}
	if res.DeletedCount() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) findOneAndUpdate(ctx context.Context, filter, update interface{}) (*Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	post := new(Post)
	err := r.posts.FindOneAndUpdate(ctx, filter, update, opts).Decode(post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("post/repo: failed updating post: %w", err)
	}
	return post, nil
}
