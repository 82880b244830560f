package service

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/booklendiverse/booklend-service/internal/errs"
	"github.com/booklendiverse/booklend-service/internal/model"
	"github.com/booklendiverse/booklend-service/pkg/auth"
)

func (s *Service) SignUp(ctx context.Context, req model.SignUpRequest) (model.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.AuthResponse{}, errors.Wrap(err, "hash password")
	}
	user, err := s.repo.CreateUser(ctx, model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Location:     req.Location,
		Role:         auth.RoleUser,
	})
	if err != nil {
		return model.AuthResponse{}, err
	}
	token, err := auth.NewToken(s.jwtSecret, user.ID, user.Role, s.tokenTTL)
	if err != nil {
		return model.AuthResponse{}, errors.Wrap(err, "sign token")
	}
	return model.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    user,
	}, nil
}

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return model.AuthResponse{}, errs.ErrBadCreds
		}
		return model.AuthResponse{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return model.AuthResponse{}, errs.ErrBadCreds
	}
	token, err := auth.NewToken(s.jwtSecret, user.ID, user.Role, s.tokenTTL)
	if err != nil {
		return model.AuthResponse{}, errors.Wrap(err, "sign token")
	}
	return model.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	}, nil
}

func (s *Service) Me(ctx context.Context, userID int) (model.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (model.User, error) {
	return s.repo.UpdateUser(ctx, userID, req)
}

// PublicProfile returns another user's profile with contact details stripped.
func (s *Service) PublicProfile(ctx context.Context, id int) (model.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	user.Email = ""
	user.Phone = ""
	user.UpiID = ""
	return user, nil
}

func (s *Service) RateUser(ctx context.Context, raterID, userID int, req model.ReviewRequest) error {
	if raterID == userID {
		return errs.ErrForbidden
	}
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return err
	}
	return s.repo.AddUserRating(ctx, model.UserRating{
		UserID:  userID,
		RaterID: raterID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
}

func (s *Service) UserRatings(ctx context.Context, userID int) ([]model.UserRating, error) {
	return s.repo.ListUserRatings(ctx, userID)
}
