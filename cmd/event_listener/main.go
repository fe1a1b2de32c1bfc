package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nandanugg/apartment-notifier/config"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg)

	conn, err := config.NewRabbitMQ(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("rabbitmq")
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatal().Err(err).Msg("rabbitmq channel")
	}
	defer func() { _ = ch.Close() }()

	if err := config.DeclareListingTopology(ch); err != nil {
		logger.Fatal().Err(err).Msg("rabbitmq topology")
	}

	msgs, err := ch.Consume(config.ListingQueue, "", true, false, false, false, nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("consume")
	}

	logger.Info().Str("queue", config.ListingQueue).Msg("waiting for listing events")

	go func() {
		for msg := range msgs {
			line, err := formatEvent(msg.Body)
			if err != nil {
				logger.Warn().Err(err).Msg("invalid event")
				continue
			}
			fmt.Println(line)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info().Msg("shutting down")
}

func formatEvent(body []byte) (string, error) {
	var event struct {
		Event string `json:"event"`
		Area  string `json:"area"`
		Price string `json:"price"`
		URL   string `json:"url"`
	}
	if err := json.Unmarshal(body, &event); err != nil {
		return "", err
	}
	return fmt.Sprintf("[%s] %s | %s | %s", event.Event, event.Area, event.Price, event.URL), nil
}
