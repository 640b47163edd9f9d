package server

import (
	"Foodgram/handler"
)

type Handlers struct {
	Recipe    *handler.Recipe
	User      *handler.User
	ShortLink *handler.ShortLink
}
