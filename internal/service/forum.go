package service

import (
	"context"

	"github.com/booklendiverse/booklend-service/internal/model"
)

func (s *Service) ListPosts(ctx context.Context, filter model.PostFilter) (model.PostList, error) {
	return s.repo.ListPosts(ctx, filter)
}

func (s *Service) CreatePost(ctx context.Context, authorID int, req model.CreatePostRequest) (model.ForumPost, error) {
	return s.repo.CreatePost(ctx, model.ForumPost{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
	})
}

func (s *Service) GetPost(ctx context.Context, id int) (model.ForumPost, error) {
	return s.repo.GetPost(ctx, id)
}

func (s *Service) AddComment(ctx context.Context, authorID, postID int, req model.CommentRequest) (model.ForumComment, error) {
	return s.repo.AddComment(ctx, model.ForumComment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  req.Content,
	})
}

func (s *Service) ToggleLike(ctx context.Context, userID, postID int) (model.LikeResponse, error) {
	liked, likes, err := s.repo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return model.LikeResponse{}, err
	}
	msg := "Post liked"
	if !liked {
		msg = "Like removed"
	}
	return model.LikeResponse{Message: msg, Liked: liked, Likes: likes}, nil
}
