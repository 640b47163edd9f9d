package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse([]byte("mysql:\n  host: db\n  port: 3306\n  username: foodgram\n  password: secret\n  database: foodgram\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, conf.Server.Http)
	assert.Equal(t, 6, conf.Pagination.DefaultLimit)
	assert.Equal(t, 100, conf.Pagination.MaxLimit)
	assert.Nil(t, conf.Redis)
	assert.Equal(t, "foodgram:secret@tcp(db:3306)/foodgram?charset=utf8mb4&parseTime=True&loc=Local", conf.MySQL.Dsn())
}

func TestShortLinkLink(t *testing.T) {
	s := &ShortLink{BaseURL: "https://foodgram.example.com/"}
	assert.Equal(t, "https://foodgram.example.com/s/aB3x9", s.Link("localhost:8080", "aB3x9"))

	s = &ShortLink{}
	assert.Equal(t, "localhost:8080/s/aB3x9", s.Link("localhost:8080", "aB3x9"))
}
