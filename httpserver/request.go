package httpserver

import (
	"moviecatalog/actor"
	"moviecatalog/director"
	"moviecatalog/genre"
	"moviecatalog/movie"
	"moviecatalog/platform"
	"moviecatalog/production"
)

// Required fields are checked by the domain packages so that their messages
// reach the client unchanged. Tags here only bound sizes and ranges.

type PersonRequest struct {
	FirstName string `json:"first_name" form:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" form:"last_name" validate:"max=100"`
}

func (r PersonRequest) ToActor(id int64) actor.Actor {
	return actor.Actor{ActorID: id, FirstName: r.FirstName, LastName: r.LastName}
}

func (r PersonRequest) ToDirector(id int64) director.Director {
	return director.Director{DirectorID: id, FirstName: r.FirstName, LastName: r.LastName}
}

type GenreRequest struct {
	Genre string `json:"genre" form:"genre" validate:"max=50"`
}

func (r GenreRequest) ToGenre(id int64) genre.Genre {
	return genre.Genre{GenreID: id, Genre: r.Genre}
}

type ProductionRequest struct {
	Production string `json:"production" form:"production" validate:"max=100"`
}

func (r ProductionRequest) ToProduction(id int64) production.Production {
	return production.Production{ProductionID: id, Production: r.Production}
}

type PlatformRequest struct {
	StreamingPlatform string `json:"streaming_platform" form:"streaming_platform" validate:"max=100"`
}

func (r PlatformRequest) ToPlatform(id int64) platform.StreamingPlatform {
	return platform.StreamingPlatform{StreamingPlatformID: id, StreamingPlatform: r.StreamingPlatform}
}

type MovieRequest struct {
	Title        string `json:"title" form:"title" validate:"max=255"`
	ProductionID *int64 `json:"production_id" form:"production_id" validate:"omitempty,gt=0"`
	YrReleased   *int   `json:"yr_released" form:"yr_released" validate:"omitempty,gte=1870,lte=2100"`
	GenreID      *int64 `json:"genre_id" form:"genre_id" validate:"omitempty,gt=0"`
	DirectorID   *int64 `json:"director_id" form:"director_id" validate:"omitempty,gt=0"`
}

func (r MovieRequest) ToMovie(id int64) (movie.Movie, movie.Links) {
	m := movie.Movie{
		MovieID:      id,
		Title:        r.Title,
		ProductionID: r.ProductionID,
		YrReleased:   r.YrReleased,
	}
	l := movie.Links{
		GenreID:    r.GenreID,
		DirectorID: r.DirectorID,
	}
	return m, l
}

type SearchMoviesRequest struct {
	Query string `query:"q" validate:"required,notblank,max=200"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
}
