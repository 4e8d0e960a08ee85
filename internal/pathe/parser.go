package pathe

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/pathewatch/pathewatch/internal/common/errorwrapper"
	"github.com/pathewatch/pathewatch/internal/models"
)

// CSS selectors for the schedule fragment markup.
const (
	itemSelector     = "div.schedule-simple__item"
	titleSelector    = "h4 a"
	posterSelector   = "div.schedule-simple__poster img"
	showtimeSelector = "a.schedule-time"
	startSelector    = "span.schedule-time__start"
	endSelector      = "span.schedule-time__end"
	labelSelector    = "span.schedule-time__label"
)

// ScheduleParser extracts schedule items from the HTML fragment returned by
// the schedules endpoint.
type ScheduleParser struct {
	logger zerolog.Logger
}

// NewScheduleParser creates a new ScheduleParser.
func NewScheduleParser(logger zerolog.Logger) *ScheduleParser {
	return &ScheduleParser{
		logger: logger.With().Str("component", "ScheduleParser").Logger(),
	}
}

// Parse extracts every movie entry from a schedule fragment. An empty or
// movie-less fragment yields an empty slice, not an error; errors are
// reserved for markup goquery cannot read at all.
func (sp *ScheduleParser) Parse(fragment []byte) ([]models.ScheduleItem, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errorwrapper.ErrScheduleParse, err)
	}

	var items []models.ScheduleItem
	doc.Find(itemSelector).Each(func(_ int, selection *goquery.Selection) {
		if item := sp.parseItem(selection); item != nil {
			items = append(items, *item)
		}
	})

	sp.logger.Debug().Int("items", len(items)).Int("fragment_bytes", len(fragment)).Msg("Schedule fragment parsed")
	return items, nil
}

// parseItem reads one schedule entry. Entries without a title link (ad
// placeholders render inside the same item markup) are skipped.
func (sp *ScheduleParser) parseItem(selection *goquery.Selection) *models.ScheduleItem {
	titleLink := selection.Find(titleSelector).First()
	title := strings.TrimSpace(titleLink.Text())
	if title == "" {
		return nil
	}

	item := &models.ScheduleItem{
		Title:      title,
		DetailPath: titleLink.AttrOr("href", ""),
		PosterURL:  selection.Find(posterSelector).First().AttrOr("src", ""),
	}

	selection.Find(showtimeSelector).Each(func(_ int, timeSelection *goquery.Selection) {
		item.Showtimes = append(item.Showtimes, parseShowtime(timeSelection))
	})

	return item
}

func parseShowtime(selection *goquery.Selection) models.Showtime {
	return models.Showtime{
		Start:       strings.TrimSpace(selection.Find(startSelector).First().Text()),
		End:         strings.TrimSpace(selection.Find(endSelector).First().Text()),
		Label:       strings.TrimSpace(selection.Find(labelSelector).First().Text()),
		BookingPath: selection.AttrOr("data-href", ""),
	}
}

// FindMovie returns the first schedule item whose title matches the
// requested movie, ignoring case. Nil when the movie is not listed.
func FindMovie(items []models.ScheduleItem, movie string) *models.ScheduleItem {
	for i := range items {
		if strings.EqualFold(items[i].Title, movie) {
			return &items[i]
		}
	}
	return nil
}
