package routing

import "moviesexplorer/pkg/validation"

const (
	passwordMinLen = 8
	// bcrypt only hashes the first 72 bytes and refuses longer input.
	passwordMaxLen = 72
	nameMinLen     = 2
	nameMaxLen     = 30
	objectIDLen    = 24
)

var (
	signupSchema = validation.MustCompile("signup", []validation.Field{
		{Name: "name", Value: validation.String().Min(nameMinLen).Max(nameMaxLen)},
		{Name: "email", Required: true, Value: validation.String().Email()},
		{Name: "password", Required: true, Value: validation.String().Min(passwordMinLen).Max(passwordMaxLen)},
	}, nil)

	signinSchema = validation.MustCompile("signin", []validation.Field{
		{Name: "email", Required: true, Value: validation.String().Email()},
		{Name: "password", Required: true, Value: validation.String().Min(passwordMinLen).Max(passwordMaxLen)},
	}, nil)

	profileSchema = validation.MustCompile("profile", []validation.Field{
		{Name: "name", Required: true, Value: validation.String().Min(nameMinLen).Max(nameMaxLen)},
		{Name: "email", Required: true, Value: validation.String().Email()},
	}, nil)

	createMovieSchema = validation.MustCompile("movie", []validation.Field{
		{Name: "country", Required: true, Value: validation.String()},
		{Name: "director", Required: true, Value: validation.String()},
		{Name: "duration", Required: true, Value: validation.Number()},
		{Name: "year", Required: true, Value: validation.String()},
		{Name: "description", Required: true, Value: validation.String()},
		{Name: "image", Required: true, Value: validation.String().Pattern(validation.URLPattern)},
		{Name: "trailer", Required: true, Value: validation.String().Pattern(validation.URLPattern)},
		{Name: "thumbnail", Required: true, Value: validation.String().Pattern(validation.URLPattern)},
		{Name: "movieId", Required: true, Value: validation.Integer()},
		{Name: "nameRU", Required: true, Value: validation.String()},
		{Name: "nameEN", Required: true, Value: validation.String()},
	}, nil)

	movieIDSchema = validation.MustCompile("movie-id", nil, []validation.Field{
		{Name: "movieId", Required: true, Value: validation.String().Hex().Len(objectIDLen)},
	})
)
