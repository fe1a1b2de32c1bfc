package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/nandanugg/apartment-notifier/config"
)

const topic = "/apartments/listing"

type listingMessage struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	URL       string  `json:"url"`
	Price     string  `json:"price"`
	Where     string  `json:"where"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

var wheres = []string{"rockridge", "Adams Point", "oakland", "Mission District", "noe valley", "SOMA", "richmond / seacliff"}

var names = []string{"Sunny 1br", "Spacious studio", "Top floor 2br/1ba", "Charming flat w/ yard", "Remodeled in-law"}

func randomListing() listingMessage {
	id := strconv.FormatInt(7_000_000_000+rand.Int63n(1_000_000_000), 10)
	// Bay Area, roughly Daly City to Albany
	lat := 37.70 + rand.Float64()*0.19
	lon := -122.51 + rand.Float64()*0.27
	return listingMessage{
		ID:        id,
		Name:      names[rand.Intn(len(names))],
		URL:       fmt.Sprintf("https://sfbay.craigslist.org/apa/d/%s.html", id),
		Price:     fmt.Sprintf("$%d", 1800+rand.Intn(30)*50),
		Where:     wheres[rand.Intn(len(wheres))],
		Latitude:  lat,
		Longitude: lon,
		Timestamp: time.Now().Unix(),
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <interval_seconds>\n", os.Args[0])
		os.Exit(1)
	}

	intervalSec, err := strconv.Atoi(os.Args[1])
	if err != nil || intervalSec <= 0 {
		fmt.Fprintf(os.Stderr, "error: interval must be a positive integer\n")
		os.Exit(1)
	}

	cfg := config.Load()
	cfg.MQTTClientID = "apartment-mock-publisher"
	logger := config.NewLogger(cfg)

	client, err := config.NewMQTT(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("mqtt")
	}
	defer client.Disconnect(250)

	logger.Info().Str("broker", cfg.MQTTBroker).Int("interval_sec", intervalSec).Msg("publishing listings")

	ticker := time.NewTicker(time.Duration(intervalSec) * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		payload, _ := json.Marshal(randomListing())

		token := client.Publish(topic, 1, false, payload)
		token.Wait()
		if err := token.Error(); err != nil {
			logger.Error().Err(err).Msg("publish")
			continue
		}

		logger.Info().RawJSON("listing", payload).Msg("published")
	}
}
