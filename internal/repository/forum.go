package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/booklendiverse/booklend-service/internal/errs"
	"github.com/booklendiverse/booklend-service/internal/model"
)

var postColumns = []string{
	"p.id", "p.author_id", "p.title", "p.content", "p.created_at", "p.updated_at",
	`coalesce((select string_agg(t.tag, ',' order by t.tag) from ` + forumTagsTableName + ` t where t.post_id = p.id), '') as tags`,
	`(select count(*) from ` + forumLikesTableName + ` l where l.post_id = p.id) as likes`,
	`u.id as "author.id"`, `u.name as "author.name"`, `u.avatar as "author.avatar"`,
}

func (r *repository) postQuery() sq.SelectBuilder {
	return qb.Select(postColumns...).
		From(forumPostsTableName + " p").
		Join(usersTableName + " u on u.id = p.author_id")
}

func (r *repository) ListPosts(ctx context.Context, filter model.PostFilter) (model.PostList, error) {
	cond := sq.And{}
	if filter.Search != "" {
		pat := "%" + filter.Search + "%"
		cond = append(cond, sq.Or{sq.ILike{"p.title": pat}, sq.ILike{"p.content": pat}})
	}
	if filter.Tag != "" && filter.Tag != "all" {
		cond = append(cond, sq.Expr(`exists (select 1 from `+forumTagsTableName+` t where t.post_id = p.id and t.tag = ?)`, filter.Tag))
	}

	countQ, countArgs, err := qb.Select("count(*)").
		From(forumPostsTableName + " p").
		Where(cond).
		ToSql()
	if err != nil {
		return model.PostList{}, err
	}
	var total int
	if err := r.db.GetContext(ctx, &total, countQ, countArgs...); err != nil {
		return model.PostList{}, err
	}

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	q, args, err := r.postQuery().
		Where(cond).
		OrderBy("p.created_at desc").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		ToSql()
	if err != nil {
		return model.PostList{}, err
	}
	posts := make([]model.ForumPost, 0)
	if err := r.db.SelectContext(ctx, &posts, q, args...); err != nil {
		return model.PostList{}, err
	}
	for i := range posts {
		posts[i].SplitTags()
	}

	totalPages := (total + limit - 1) / limit
	return model.PostList{
		Posts: posts,
		Pagination: model.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}, nil
}

func (r *repository) CreatePost(ctx context.Context, p model.ForumPost) (model.ForumPost, error) {
	var id int
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		q, args, err := qb.Insert(forumPostsTableName).
			Columns("author_id", "title", "content").
			Values(p.AuthorID, p.Title, p.Content).
			Suffix("returning id").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &id, q, args...); err != nil {
			return err
		}
		if len(p.Tags) == 0 {
			return nil
		}
		ins := qb.Insert(forumTagsTableName).Columns("post_id", "tag")
		for _, tag := range p.Tags {
			ins = ins.Values(id, tag)
		}
		q, args, err = ins.Suffix("on conflict do nothing").ToSql()
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, q, args...)
		return err
	})
	if err != nil {
		return model.ForumPost{}, err
	}
	return r.GetPost(ctx, id)
}

func (r *repository) GetPost(ctx context.Context, id int) (model.ForumPost, error) {
	q, args, err := r.postQuery().
		Where(sq.Eq{"p.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.ForumPost{}, err
	}
	var post model.ForumPost
	if err := r.db.GetContext(ctx, &post, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ForumPost{}, errs.ErrNotFound
		}
		return model.ForumPost{}, err
	}
	post.SplitTags()

	cq, cargs, err := qb.Select("c.id", "c.post_id", "c.author_id", "c.content", "c.created_at",
		`u.id as "author.id"`, `u.name as "author.name"`, `u.avatar as "author.avatar"`).
		From(forumCommentsTable + " c").
		Join(usersTableName + " u on u.id = c.author_id").
		Where(sq.Eq{"c.post_id": id}).
		OrderBy("c.created_at asc").
		ToSql()
	if err != nil {
		return model.ForumPost{}, err
	}
	comments := make([]model.ForumComment, 0)
	if err := r.db.SelectContext(ctx, &comments, cq, cargs...); err != nil {
		return model.ForumPost{}, err
	}
	post.Comments = comments
	return post, nil
}

func (r *repository) AddComment(ctx context.Context, c model.ForumComment) (model.ForumComment, error) {
	if _, err := r.GetPost(ctx, c.PostID); err != nil {
		return model.ForumComment{}, err
	}
	q, args, err := qb.Insert(forumCommentsTable).
		Columns("post_id", "author_id", "content").
		Values(c.PostID, c.AuthorID, c.Content).
		Suffix("returning id, created_at").
		ToSql()
	if err != nil {
		return model.ForumComment{}, err
	}
	if err := r.db.QueryRowxContext(ctx, q, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		return model.ForumComment{}, err
	}
	return c, nil
}

func (r *repository) ToggleLike(ctx context.Context, postID, userID int) (bool, int, error) {
	if _, err := r.GetPost(ctx, postID); err != nil {
		return false, 0, err
	}
	liked := true
	res, err := r.db.ExecContext(ctx,
		`delete from `+forumLikesTableName+` where post_id = $1 and user_id = $2`, postID, userID)
	if err != nil {
		return false, 0, err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		liked = false
	} else {
		if _, err := r.db.ExecContext(ctx,
			`insert into `+forumLikesTableName+` (post_id, user_id) values ($1, $2) on conflict do nothing`,
			postID, userID); err != nil {
			return false, 0, err
		}
	}
	var likes int
	if err := r.db.GetContext(ctx, &likes,
		`select count(*) from `+forumLikesTableName+` where post_id = $1`, postID); err != nil {
		return false, 0, err
	}
	return liked, likes, nil
}
