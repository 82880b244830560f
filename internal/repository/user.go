package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/booklendiverse/booklend-service/internal/errs"
	"github.com/booklendiverse/booklend-service/internal/model"
)

var userColumns = []string{
	"id", "name", "email", "password_hash", "phone", "avatar", "bio",
	`address as "location.address"`, `city as "location.city"`, `state as "location.state"`,
	`lat as "location.lat"`, `lng as "location.lng"`,
	"role", "upi_id", "transaction_count", "created_at",
}

func (r *repository) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	var created model.User
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		q, args, err := qb.Insert(usersTableName).
			Columns("name", "email", "password_hash", "avatar", "role",
				"address", "city", "state", "lat", "lng").
			Values(u.Name, u.Email, u.PasswordHash, u.Avatar, u.Role,
				u.Location.Address, u.Location.City, u.Location.State, u.Location.Lat, u.Location.Lng).
			Suffix(`returning ` + joinColumns(userColumns)).
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &created, q, args...); err != nil {
			if isUniqueViolation(err) {
				return errs.ErrUserExists
			}
			r.log.Error("CreateUser", zap.String("q", q), zap.Error(err))
			return err
		}
		// every account starts with the new_user badge
		_, err = tx.ExecContext(ctx,
			`insert into `+userBadgesTableName+` (user_id, badge) values ($1, $2) on conflict do nothing`,
			created.ID, model.BadgeNewUser)
		return err
	})
	if err != nil {
		return model.User{}, err
	}
	created.Badges = []string{model.BadgeNewUser}
	return created, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	q, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var u model.User
	if err := r.db.GetContext(ctx, &u, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, err
	}
	u.Badges, err = r.GetBadges(ctx, u.ID)
	return u, err
}

func (r *repository) GetUserByID(ctx context.Context, id int) (model.User, error) {
	q, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var u model.User
	if err := r.db.GetContext(ctx, &u, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, err
	}
	u.Badges, err = r.GetBadges(ctx, u.ID)
	return u, err
}

func (r *repository) UpdateUser(ctx context.Context, id int, req model.UpdateProfileRequest) (model.User, error) {
	upd := qb.Update(usersTableName).Where(sq.Eq{"id": id})
	set := false
	if req.Name != "" {
		upd, set = upd.Set("name", req.Name), true
	}
	if req.Email != "" {
		upd, set = upd.Set("email", req.Email), true
	}
	if req.Phone != "" {
		upd, set = upd.Set("phone", req.Phone), true
	}
	if req.Bio != "" {
		upd, set = upd.Set("bio", req.Bio), true
	}
	if req.UpiID != "" {
		upd, set = upd.Set("upi_id", req.UpiID), true
	}
	if req.Location != nil {
		upd = upd.Set("address", req.Location.Address).
			Set("city", req.Location.City).
			Set("state", req.Location.State).
			Set("lat", req.Location.Lat).
			Set("lng", req.Location.Lng)
		set = true
	}
	if !set {
		return r.GetUserByID(ctx, id)
	}

	q, args, err := upd.Suffix(`returning ` + joinColumns(userColumns)).ToSql()
	if err != nil {
		return model.User{}, err
	}
	var u model.User
	if err := r.db.GetContext(ctx, &u, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return model.User{}, errs.ErrUserExists
		}
		return model.User{}, err
	}
	u.Badges, err = r.GetBadges(ctx, u.ID)
	return u, err
}

func (r *repository) GetBadges(ctx context.Context, userID int) ([]string, error) {
	q, args, err := qb.Select("badge").
		From(userBadgesTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("badge").
		ToSql()
	if err != nil {
		return nil, err
	}
	badges := make([]string, 0)
	if err := r.db.SelectContext(ctx, &badges, q, args...); err != nil {
		return nil, err
	}
	return badges, nil
}

func (r *repository) AddBadges(ctx context.Context, userID int, badges []string) error {
	if len(badges) == 0 {
		return nil
	}
	ins := qb.Insert(userBadgesTableName).Columns("user_id", "badge")
	for _, b := range badges {
		ins = ins.Values(userID, b)
	}
	q, args, err := ins.Suffix("on conflict do nothing").ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) AddUserRating(ctx context.Context, rating model.UserRating) error {
	q, args, err := qb.Insert(userRatingsTableName).
		Columns("user_id", "rater_id", "rating", "comment").
		Values(rating.UserID, rating.RaterID, rating.Rating, rating.Comment).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) ListUserRatings(ctx context.Context, userID int) ([]model.UserRating, error) {
	q, args, err := qb.Select("ur.id", "ur.user_id", "ur.rater_id", "ur.rating", "ur.comment", "ur.created_at",
		`u.id as "rater.id"`, `u.name as "rater.name"`, `u.avatar as "rater.avatar"`).
		From(userRatingsTableName + " ur").
		Join(usersTableName + " u on u.id = ur.rater_id").
		Where(sq.Eq{"ur.user_id": userID}).
		OrderBy("ur.created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	ratings := make([]model.UserRating, 0)
	if err := r.db.SelectContext(ctx, &ratings, q, args...); err != nil {
		return nil, err
	}
	return ratings, nil
}
