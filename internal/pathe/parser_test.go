package pathe

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scheduleFragment mirrors the markup the schedules endpoint returns: a bare
// HTML snippet with one schedule-simple__item per movie, plus the occasional
// title-less promo block.
const scheduleFragment = `
<div class="schedule-simple">
  <div class="schedule-simple__item">
    <div class="schedule-simple__poster">
      <img src="https://www.pathe.nl/gfx_content/posters/the-green-knight.jpg" alt="The Green Knight">
    </div>
    <div class="schedule-simple__infos">
      <h4><a href="/film/24550/the-green-knight">The Green Knight</a></h4>
      <div class="schedule-simple__times">
        <a class="schedule-time" data-href="/tickets/reserveren/881234">
          <span class="schedule-time__start">14:30</span>
          <span class="schedule-time__end">17:05</span>
          <span class="schedule-time__label">Originele versie</span>
        </a>
        <a class="schedule-time" data-href="/tickets/reserveren/881260">
          <span class="schedule-time__start">20:15</span>
          <span class="schedule-time__end">22:50</span>
          <span class="schedule-time__label">IMAX</span>
        </a>
      </div>
    </div>
  </div>
  <div class="schedule-simple__item">
    <div class="schedule-simple__infos">
      <h4><a href="/film/25301/dune">Dune</a></h4>
      <div class="schedule-simple__times">
        <a class="schedule-time" data-href="/tickets/reserveren/882001">
          <span class="schedule-time__start">19:00</span>
          <span class="schedule-time__end">21:45</span>
          <span class="schedule-time__label">4DX</span>
        </a>
      </div>
    </div>
  </div>
  <div class="schedule-simple__item">
    <div class="schedule-simple__poster">
      <img src="https://www.pathe.nl/gfx_content/promo/banner.jpg" alt="promo">
    </div>
  </div>
</div>
`

func newTestParser() *ScheduleParser {
	return NewScheduleParser(zerolog.Nop())
}

func TestScheduleParser_Parse(t *testing.T) {
	items, err := newTestParser().Parse([]byte(scheduleFragment))

	require.NoError(t, err)
	require.Len(t, items, 2, "promo block without a title link must be skipped")

	greenKnight := items[0]
	assert.Equal(t, "The Green Knight", greenKnight.Title)
	assert.Equal(t, "/film/24550/the-green-knight", greenKnight.DetailPath)
	assert.Equal(t, "https://www.pathe.nl/gfx_content/posters/the-green-knight.jpg", greenKnight.PosterURL)
	require.Len(t, greenKnight.Showtimes, 2)
	assert.Equal(t, "14:30", greenKnight.Showtimes[0].Start)
	assert.Equal(t, "17:05", greenKnight.Showtimes[0].End)
	assert.Equal(t, "Originele versie", greenKnight.Showtimes[0].Label)
	assert.Equal(t, "/tickets/reserveren/881234", greenKnight.Showtimes[0].BookingPath)
	assert.Equal(t, "IMAX", greenKnight.Showtimes[1].Label)

	dune := items[1]
	assert.Equal(t, "Dune", dune.Title)
	assert.Empty(t, dune.PosterURL, "entry without poster markup keeps an empty poster URL")
	require.Len(t, dune.Showtimes, 1)
	assert.Equal(t, "/tickets/reserveren/882001", dune.Showtimes[0].BookingPath)
}

func TestScheduleParser_Parse_EmptyFragment(t *testing.T) {
	items, err := newTestParser().Parse([]byte(""))

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestScheduleParser_Parse_NonScheduleMarkup(t *testing.T) {
	items, err := newTestParser().Parse([]byte("<p>De agenda is tijdelijk niet beschikbaar.</p>"))

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestScheduleParser_Parse_ShowtimeWithMissingSpans(t *testing.T) {
	fragment := `
<div class="schedule-simple__item">
  <h4><a href="/film/1/x">Stalker</a></h4>
  <a class="schedule-time"><span class="schedule-time__start">21:00</span></a>
</div>`

	items, err := newTestParser().Parse([]byte(fragment))

	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Len(t, items[0].Showtimes, 1)
	showtime := items[0].Showtimes[0]
	assert.Equal(t, "21:00", showtime.Start)
	assert.Empty(t, showtime.End)
	assert.Empty(t, showtime.Label)
	assert.Empty(t, showtime.BookingPath)
}

func TestFindMovie(t *testing.T) {
	items, err := newTestParser().Parse([]byte(scheduleFragment))
	require.NoError(t, err)

	assert.Nil(t, FindMovie(items, "Tenet"))

	match := FindMovie(items, "dune")
	require.NotNil(t, match, "title match must ignore case")
	assert.Equal(t, "Dune", match.Title)

	match = FindMovie(items, "THE GREEN KNIGHT")
	require.NotNil(t, match)
	assert.Equal(t, "The Green Knight", match.Title)
}
