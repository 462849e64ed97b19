package postgres

import (
	"context"
	"errors"

	"moviecatalog/actor"
	"moviecatalog/movie"
	"moviecatalog/sortfield"

	"gorm.io/gorm"
)

// ActorModel represents the database model for actors
type ActorModel struct {
	ActorID   int64  `gorm:"column:actor_id;primaryKey"`
	FirstName string `gorm:"column:first_name;not null"`
	LastName  string `gorm:"column:last_name;not null"`
}

// TableName specifies the table name for GORM
func (ActorModel) TableName() string {
	return "actor"
}

// ActorRepository implements actor.Repository interface
type ActorRepository struct {
	db *gorm.DB
}

// NewActorRepository creates a new actor repository
func NewActorRepository(db *gorm.DB) *ActorRepository {
	return &ActorRepository{db: db}
}

func (r *ActorRepository) AllActors(ctx context.Context) ([]actor.Actor, error) {
	var models []ActorModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainActors(models), nil
}

// AllActorsSorted orders by a whitelisted column. Anything else is refused
// before a statement is built.
func (r *ActorRepository) AllActorsSorted(ctx context.Context, field actor.SortField) ([]actor.Actor, error) {
	if !actor.SortFields.Contains(field) {
		return nil, sortfield.ErrInvalidSortField
	}

	var models []ActorModel
	if err := r.db.WithContext(ctx).Order(orderByColumn(string(field))).Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainActors(models), nil
}

func (r *ActorRepository) GetByID(ctx context.Context, id int64) (actor.Actor, error) {
	var model ActorModel

	err := r.db.WithContext(ctx).Where("actor_id = ?", id).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return actor.Actor{}, actor.ErrActorNotFound
		}
		return actor.Actor{}, err
	}

	return toDomainActor(model), nil
}

// MoviesByActor returns every movie linked to the actor through movie_to_actor.
func (r *ActorRepository) MoviesByActor(ctx context.Context, id int64) ([]movie.Movie, error) {
	var models []MovieModel
	err := r.db.WithContext(ctx).
		Joins("JOIN movie_to_actor ma ON ma.movie_id = movie.movie_id").
		Where("ma.actor_id = ?", id).
		Order("movie.movie_id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainMovies(models), nil
}

func (r *ActorRepository) ActorsByMovie(ctx context.Context, movieID int64) ([]actor.Actor, error) {
	var models []ActorModel
	err := r.db.WithContext(ctx).
		Joins("JOIN movie_to_actor ma ON ma.actor_id = actor.actor_id").
		Where("ma.movie_id = ?", movieID).
		Order("actor.actor_id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainActors(models), nil
}

// CreateActor inserts an actor and returns the generated id
func (r *ActorRepository) CreateActor(ctx context.Context, a actor.Actor) (int64, error) {
	model := ActorModel{
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return 0, err
	}
	return model.ActorID, nil
}

func (r *ActorRepository) UpdateActor(ctx context.Context, a actor.Actor) error {
	result := r.db.WithContext(ctx).Model(&ActorModel{}).Where("actor_id = ?", a.ActorID).Updates(map[string]interface{}{
		"first_name": a.FirstName,
		"last_name":  a.LastName,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return actor.ErrActorNotFound
	}
	return nil
}

func toDomainActor(model ActorModel) actor.Actor {
	return actor.Actor{
		ActorID:   model.ActorID,
		FirstName: model.FirstName,
		LastName:  model.LastName,
	}
}

func toDomainActors(models []ActorModel) []actor.Actor {
	actors := make([]actor.Actor, len(models))
	for i, model := range models {
		actors[i] = toDomainActor(model)
	}
	return actors
}
