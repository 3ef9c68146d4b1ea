package main

import "time"

type Config struct {
	APIBaseURL          string        `env:"API_BASE_URL,default=http://localhost:8000/api"`
	TokenDBPath         string        `env:"TOKEN_DB_PATH,default=.cloudmeet/session"`
	LogLevel            string        `env:"LOG_LEVEL,default=INFO"`
	HTTPTimeout         time.Duration `env:"HTTP_TIMEOUT,default=10s"`
	RoomPollInterval    time.Duration `env:"ROOM_POLL_INTERVAL,default=5s"`
	MessagePollInterval time.Duration `env:"MESSAGE_POLL_INTERVAL,default=1500ms"`
	RoomPageLimit       int           `env:"ROOM_PAGE_LIMIT,default=20"`
	MessagePageLimit    int           `env:"MESSAGE_PAGE_LIMIT,default=50"`
	Colours             bool          `env:"COLOURS,default=true"`
}
