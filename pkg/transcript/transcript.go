// Package transcript loads chat messages from JSON files into entry props.
package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"chatentry/pkg/order"
	"chatentry/pkg/ui/components/chatentry"

	"github.com/google/uuid"
)

// Record is one message as stored in a transcript file. A record with an
// Order and no Message gets its text from the order summary.
type Record struct {
	ID        string          `json:"id"`
	Locale    string          `json:"locale"`
	Timestamp *float64        `json:"timestamp"`
	Message   string          `json:"message"`
	Origin    string          `json:"origin"`
	Name      string          `json:"name"`
	Edited    bool            `json:"edited"`
	Order     *order.RawOrder `json:"order"`
}

// Item is a loaded message keyed for list rendering.
type Item struct {
	ID    string
	Props chatentry.Props
}

// Defaults fill fields a record leaves empty.
type Defaults struct {
	Locale string
	Brand  string
}

// LoadFile reads a transcript from path.
func LoadFile(path string, d Defaults) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	defer f.Close()
	return Load(f, d)
}

// Load decodes a JSON array of records. Records without an id get a
// random one; a missing timestamp renders as an invalid date.
func Load(r io.Reader, d Defaults) ([]Item, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse transcript: %w", err)
	}

	items := make([]Item, 0, len(records))
	for i, rec := range records {
		item, err := rec.item(d)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (rec Record) item(d Defaults) (Item, error) {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	locale := rec.Locale
	if locale == "" {
		locale = d.Locale
	}

	ts := math.NaN()
	if rec.Timestamp != nil {
		ts = *rec.Timestamp
	}

	message := rec.Message
	if message == "" && rec.Order != nil {
		o, err := order.Normalize(*rec.Order)
		if err != nil {
			return Item{}, fmt.Errorf("invalid order: %w", err)
		}
		message = order.Message(order.BuildSummary(d.Brand, o))
	}

	return Item{
		ID: id,
		Props: chatentry.Props{
			Locale:        locale,
			Timestamp:     ts,
			Message:       message,
			Origin:        chatentry.Origin(rec.Origin),
			Name:          rec.Name,
			HasBeenEdited: rec.Edited,
			Attrs:         map[string]string{"data-id": id},
		},
	}, nil
}
