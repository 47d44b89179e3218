// internal/app/store/forumposts/forumpoststore.go
package forumpoststore

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/hbcybertech/clubhub/internal/app/system/paging"
	"github.com/hbcybertech/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrNotFound        = errors.New("forum post not found")
	ErrCommentNotFound = errors.New("comment not found")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("ForumPosts")}
}

// Insert stores a new forum post.
func (s *Store) Insert(ctx context.Context, post models.ForumPost) (models.ForumPost, error) {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	if _, err := s.c.InsertOne(ctx, post); err != nil {
		return models.ForumPost{}, err
	}
	return post, nil
}

// GetByID retrieves a forum post by its id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.ForumPost, error) {
	var post models.ForumPost
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.ForumPost{}, ErrNotFound
		}
		return models.ForumPost{}, err
	}
	return post, nil
}

// FindPaginated returns one page of posts, newest first within the page.
func (s *Store) FindPaginated(ctx context.Context, args paging.Args) ([]models.ForumPost, error) {
	filter := bson.M{}
	if args.Search != "" {
		field := args.Field
		if field != "author" && field != "email" && field != "title" {
			field = "title"
		}
		filter[field] = bson.M{"$regex": primitive.Regex{
			Pattern: regexp.QuoteMeta(args.Search),
			Options: "i",
		}}
	}

	opts := options.Find().SetSkip(args.Skip()).SetLimit(args.Limit)
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []models.ForumPost
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	paging.SortNewestFirst(posts, func(p models.ForumPost) time.Time { return p.DateCreated })
	return posts, nil
}

// Count returns the total number of posts.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// Delete removes a post by id.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// AppendComment loads the post, appends the comment in memory and
// writes the whole comment list back. Concurrent appends to the same
// post can race and drop one write; the window is accepted.
func (s *Store) AppendComment(ctx context.Context, postID primitive.ObjectID, comment models.Comment) (models.Comment, error) {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return models.Comment{}, err
	}
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	comments := append(post.Comments, comment)
	if err := s.setComments(ctx, postID, comments); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

// ListComments returns one page of a post's comments, newest first.
// The substring filter on author or email runs after pagination, so a
// page can come back short even when more matches exist past the
// window.
func (s *Store) ListComments(ctx context.Context, postID primitive.ObjectID, args paging.Args) ([]models.Comment, error) {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments := make([]models.Comment, len(post.Comments))
	copy(comments, post.Comments)
	paging.Reverse(comments)
	comments = paging.Window(comments, args)

	if args.Search == "" {
		return comments, nil
	}
	matched := comments[:0]
	for _, c := range comments {
		if matchComment(c, args.Search, args.Field) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// DeleteComment scans the post's comment list for the given comment id,
// removes it and writes the whole list back.
func (s *Store) DeleteComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	idx := -1
	for i, c := range post.Comments {
		if c.ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrCommentNotFound
	}
	comments := append(post.Comments[:idx:idx], post.Comments[idx+1:]...)
	return s.setComments(ctx, postID, comments)
}

// FindComment returns the embedded comment with the given id.
func (s *Store) FindComment(ctx context.Context, postID, commentID primitive.ObjectID) (models.Comment, error) {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return models.Comment{}, err
	}
	for _, c := range post.Comments {
		if c.ID == commentID {
			return c, nil
		}
	}
	return models.Comment{}, ErrCommentNotFound
}

func (s *Store) setComments(ctx context.Context, postID primitive.ObjectID, comments []models.Comment) error {
	res, err := s.c.UpdateByID(ctx, postID, bson.M{"$set": bson.M{"comments": comments}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func matchComment(c models.Comment, search, field string) bool {
	switch field {
	case "email":
		return containsFold(c.Email, search)
	default:
		return containsFold(c.Author, search)
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
