package release

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kasuboski/tvsort/pkg/episode"
)

var (
	// ErrUnsupportedTitle is returned when no scheme recognizes a title
	ErrUnsupportedTitle = errors.New("unsupported release title")
	// ErrIncompleteTitle is returned when a scheme recognizes a title but required values are missing
	ErrIncompleteTitle = errors.New("incomplete release title")
)

// Scheme recognizes one naming convention
type Scheme interface {
	Name() string
	Handle(title string) bool
	Parse(title string) (episode.Identity, error)
}

// Parser tries its schemes in order and uses the first one that handles a title
type Parser struct {
	schemes []Scheme
}

// NewParser creates a parser. Without schemes the default precedence is used:
// multi-episode, then season/episode, then daily.
func NewParser(schemes ...Scheme) *Parser {
	if len(schemes) == 0 {
		schemes = []Scheme{MultiEpisodeScheme{}, SeasonEpisodeScheme{}, DailyScheme{}}
	}
	return &Parser{schemes: schemes}
}

// Handle reports whether any scheme recognizes title
func (p *Parser) Handle(title string) bool {
	for _, s := range p.schemes {
		if s.Handle(title) {
			return true
		}
	}
	return false
}

// Parse builds an identity from title
func (p *Parser) Parse(title string) (episode.Identity, error) {
	for _, s := range p.schemes {
		if !s.Handle(title) {
			continue
		}
		id, err := s.Parse(title)
		if err != nil {
			return nil, fmt.Errorf("%s scheme: %w", s.Name(), err)
		}
		return id, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedTitle, title)
}

var (
	seasonEpisodeRegex = regexp.MustCompile(`(?i)^(.*?)[\s._-]*\b(?:s(\d{1,2})[\s._-]?e(\d{1,3})|(\d{1,2})x(\d{2,3}))\b(.*)$`)
	dailyRegex         = regexp.MustCompile(`(?i)^(.*?)[\s._-]*\b((?:19|20)\d{2})[\s._-](\d{2})[\s._-](\d{2})\b(.*)$`)

	multiSeasonRegex = regexp.MustCompile(`(?i)^(.*?)[\s._-]*\bs(\d{1,2})[._ ]?e(\d{1,3})((?:[._ ]?-?[._ ]?e\d{1,3})+)\b(.*)$`)
	multiCrossRegex  = regexp.MustCompile(`(?i)^(.*?)[\s._-]*\b(\d{1,2})x(\d{2,3})((?:[._ ]?-[._ ]?(?:\d{1,2}x)?\d{2,3})+)\b(.*)$`)
	multiDailyRegex  = regexp.MustCompile(`(?i)^(.*?)[\s._-]*\b((?:19|20)\d{2})[._-](\d{2})[._-](\d{2})((?:[._ ]?[&+][._ ]?(?:19|20)\d{2}[._-]\d{2}[._-]\d{2})+)\b(.*)$`)

	extraEpisodeRegex = regexp.MustCompile(`(?i)(?:(\d{1,2})x|e)(\d{1,3})|(\d{2,3})`)
	extraDateRegex    = regexp.MustCompile(`((?:19|20)\d{2})[._-](\d{2})[._-](\d{2})`)

	sceneTokenRegex = regexp.MustCompile(`(?i)(^|[\s._-])(2160p|1080[pi]|720p|576p|480p|hdtv|pdtv|web|webrip|web-dl|webdl|bluray|bdrip|dvdrip|x264|x265|h264|h265|hevc|xvid|proper|repack|internal|ws|dsr)([\s._-]|$)`)
)

// SeasonEpisodeScheme handles "Series.S01E03.Title" and "Series 1x03 Title"
type SeasonEpisodeScheme struct{}

func (SeasonEpisodeScheme) Name() string { return "season episode" }

func (SeasonEpisodeScheme) Handle(title string) bool {
	return seasonEpisodeRegex.MatchString(title)
}

func (SeasonEpisodeScheme) Parse(title string) (episode.Identity, error) {
	m := seasonEpisodeRegex.FindStringSubmatch(title)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTitle, title)
	}

	series := cleanSeries(m[1])
	if series == "" {
		return nil, fmt.Errorf("%w: missing series in %q", ErrIncompleteTitle, title)
	}

	season, ep := m[2], m[3]
	if season == "" {
		season, ep = m[4], m[5]
	}

	return episode.SeasonEpisode{
		Series:  series,
		Season:  atoi(season),
		Episode: atoi(ep),
		Title:   cleanTitle(m[6]),
	}, nil
}

// DailyScheme handles "Series.2024.01.05.Title"
type DailyScheme struct{}

func (DailyScheme) Name() string { return "daily" }

func (DailyScheme) Handle(title string) bool {
	return dailyRegex.MatchString(title)
}

func (DailyScheme) Parse(title string) (episode.Identity, error) {
	m := dailyRegex.FindStringSubmatch(title)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTitle, title)
	}

	series := cleanSeries(m[1])
	if series == "" {
		return nil, fmt.Errorf("%w: missing series in %q", ErrIncompleteTitle, title)
	}

	daily := episode.DailyEpisode{
		Series: series,
		Year:   atoi(m[2]),
		Month:  atoi(m[3]),
		Day:    atoi(m[4]),
		Title:  cleanTitle(m[5]),
	}
	if err := episode.Validate(daily); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIncompleteTitle, err)
	}

	return daily, nil
}

// MultiEpisodeScheme handles "Series.S01E01E02", "Series.S01E01-E03",
// "Series 1x01-1x02" and "Series.2024.01.05&2024.01.06"
type MultiEpisodeScheme struct{}

func (MultiEpisodeScheme) Name() string { return "multi-episode" }

func (MultiEpisodeScheme) Handle(title string) bool {
	return multiSeasonRegex.MatchString(title) ||
		multiCrossRegex.MatchString(title) ||
		multiDailyRegex.MatchString(title)
}

func (MultiEpisodeScheme) Parse(title string) (episode.Identity, error) {
	if m := multiDailyRegex.FindStringSubmatch(title); m != nil {
		return parseMultiDaily(title, m)
	}

	m := multiSeasonRegex.FindStringSubmatch(title)
	if m == nil {
		m = multiCrossRegex.FindStringSubmatch(title)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTitle, title)
	}

	series := cleanSeries(m[1])
	if series == "" {
		return nil, fmt.Errorf("%w: missing series in %q", ErrIncompleteTitle, title)
	}

	members := []episode.Member{
		episode.SeasonEpisode{Series: series, Season: atoi(m[2]), Episode: atoi(m[3])},
	}
	for _, extra := range extraEpisodeRegex.FindAllStringSubmatch(m[4], -1) {
		// "1x01-2x01" carries its own season, "E02" and "-02" reuse the first
		season, n := atoi(m[2]), extra[2]
		if extra[1] != "" {
			season = atoi(extra[1])
		}
		if n == "" {
			n = extra[3]
		}
		members = append(members, episode.SeasonEpisode{Series: series, Season: season, Episode: atoi(n)})
	}

	// "E01-E03" is a range, "E01E02E03" a list
	if len(members) == 2 && strings.Contains(m[4], "-") {
		first, last := members[0].(episode.SeasonEpisode), members[1].(episode.SeasonEpisode)
		if first.Season == last.Season && last.Episode > first.Episode+1 {
			members = members[:1]
			for n := first.Episode + 1; n <= last.Episode; n++ {
				members = append(members, episode.SeasonEpisode{Series: series, Season: first.Season, Episode: n})
			}
		}
	}

	return newMulti(series, cleanTitle(m[5]), members)
}

func parseMultiDaily(title string, m []string) (episode.Identity, error) {
	series := cleanSeries(m[1])
	if series == "" {
		return nil, fmt.Errorf("%w: missing series in %q", ErrIncompleteTitle, title)
	}

	members := []episode.Member{
		episode.DailyEpisode{Series: series, Year: atoi(m[2]), Month: atoi(m[3]), Day: atoi(m[4])},
	}
	for _, extra := range extraDateRegex.FindAllStringSubmatch(m[5], -1) {
		members = append(members, episode.DailyEpisode{
			Series: series,
			Year:   atoi(extra[1]),
			Month:  atoi(extra[2]),
			Day:    atoi(extra[3]),
		})
	}

	return newMulti(series, cleanTitle(m[6]), members)
}

func newMulti(series, title string, members []episode.Member) (episode.Identity, error) {
	multi, err := episode.NewMultiEpisode(series, title, members...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIncompleteTitle, err)
	}

	var id episode.Identity = multi
	// "S01E02E02" names one episode
	if len(multi.Episodes) == 1 {
		switch v := multi.Episodes[0].(type) {
		case episode.SeasonEpisode:
			v.Title = title
			id = v
		case episode.DailyEpisode:
			v.Title = title
			id = v
		}
	}

	if err := episode.Validate(id); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIncompleteTitle, err)
	}
	return id, nil
}

func cleanSeries(s string) string {
	s = strings.NewReplacer(".", " ", "_", " ").Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " -")
}

// cleanTitle keeps the text following the episode marker up to the first
// scene token such as a resolution or source
func cleanTitle(s string) string {
	if loc := sceneTokenRegex.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	return cleanSeries(s)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
