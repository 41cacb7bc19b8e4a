package episode

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyMulti    = errors.New("multi-episode requires at least one member")
	ErrMixedMembers  = errors.New("multi-episode members must share a series and a numbering scheme")
	ErrInvalidNumber = errors.New("invalid episode numbering")
	ErrSpansSeasons  = errors.New("multi-episode members must share a season")
)

// Identity is the parsed structural key of a release. It is one of
// SeasonEpisode, DailyEpisode or MultiEpisode.
type Identity interface {
	SeriesName() string
	EpisodeTitle() string
	// Key uniquely identifies the episode(s) within a series
	Key() string
	String() string

	isIdentity()
}

// Member is an identity that names exactly one episode.
type Member interface {
	Identity
	// SeasonNumber is the season the episode sorts into. Daily episodes sort by year.
	SeasonNumber() int

	isMember()
}

// SeasonEpisode is an episode addressed by season and episode number
type SeasonEpisode struct {
	Series  string
	Season  int
	Episode int
	Title   string
}

func (e SeasonEpisode) SeriesName() string   { return e.Series }
func (e SeasonEpisode) EpisodeTitle() string { return e.Title }
func (e SeasonEpisode) SeasonNumber() int    { return e.Season }
func (e SeasonEpisode) Key() string          { return fmt.Sprintf("s%02de%02d", e.Season, e.Episode) }
func (e SeasonEpisode) String() string       { return fmt.Sprintf("%s %s", e.Series, e.Key()) }
func (SeasonEpisode) isIdentity()            {}
func (SeasonEpisode) isMember()              {}

// DailyEpisode is an episode addressed by its broadcast date
type DailyEpisode struct {
	Series string
	Year   int
	Month  int
	Day    int
	Title  string
}

func (e DailyEpisode) SeriesName() string   { return e.Series }
func (e DailyEpisode) EpisodeTitle() string { return e.Title }
func (e DailyEpisode) SeasonNumber() int    { return e.Year }
func (e DailyEpisode) Key() string          { return fmt.Sprintf("%04d-%02d-%02d", e.Year, e.Month, e.Day) }
func (e DailyEpisode) String() string       { return fmt.Sprintf("%s %s", e.Series, e.Key()) }
func (DailyEpisode) isIdentity()            {}
func (DailyEpisode) isMember()              {}

// Date returns the broadcast date
func (e DailyEpisode) Date() time.Time {
	return time.Date(e.Year, time.Month(e.Month), e.Day, 0, 0, 0, 0, time.UTC)
}

// MultiEpisode is a single release covering several episodes
type MultiEpisode struct {
	Series   string
	Title    string
	Episodes []Member
}

// NewMultiEpisode builds a MultiEpisode from an ordered, non-empty list of members.
// Repeated members are dropped, keeping the first. All members must sort into
// the same season directory.
func NewMultiEpisode(series, title string, members ...Member) (MultiEpisode, error) {
	if len(members) == 0 {
		return MultiEpisode{}, ErrEmptyMulti
	}

	_, daily := members[0].(DailyEpisode)
	season := members[0].SeasonNumber()
	seen := make(map[string]struct{}, len(members))
	unique := make([]Member, 0, len(members))
	for _, m := range members {
		_, isDaily := m.(DailyEpisode)
		if isDaily != daily {
			return MultiEpisode{}, ErrMixedMembers
		}
		if !sameSeries(m.SeriesName(), series) {
			return MultiEpisode{}, fmt.Errorf("%w: %q is not %q", ErrMixedMembers, m.SeriesName(), series)
		}
		if m.SeasonNumber() != season {
			return MultiEpisode{}, fmt.Errorf("%w: %s and %s", ErrSpansSeasons, members[0].Key(), m.Key())
		}
		if _, ok := seen[m.Key()]; ok {
			continue
		}
		seen[m.Key()] = struct{}{}
		unique = append(unique, m)
	}

	return MultiEpisode{
		Series:   series,
		Title:    title,
		Episodes: unique,
	}, nil
}

func (e MultiEpisode) SeriesName() string   { return e.Series }
func (e MultiEpisode) EpisodeTitle() string { return e.Title }
func (MultiEpisode) isIdentity()            {}

func (e MultiEpisode) Key() string {
	keys := make([]string, len(e.Episodes))
	for i, m := range e.Episodes {
		keys[i] = m.Key()
	}
	return strings.Join(keys, "+")
}

func (e MultiEpisode) String() string {
	return fmt.Sprintf("%s %s", e.Series, e.Key())
}

// Contains reports whether m is one of the archive's members
func (e MultiEpisode) Contains(m Member) bool {
	for _, member := range e.Episodes {
		if member.Key() == m.Key() {
			return true
		}
	}
	return false
}

// Members flattens an identity into the single episodes it covers
func Members(id Identity) []Member {
	switch v := id.(type) {
	case SeasonEpisode:
		return []Member{v}
	case DailyEpisode:
		return []Member{v}
	case MultiEpisode:
		return v.Episodes
	default:
		panic(fmt.Sprintf("unhandled identity type %T", id))
	}
}

// SeasonOf returns the season directory number an identity sorts into
func SeasonOf(id Identity) int {
	switch v := id.(type) {
	case SeasonEpisode:
		return v.Season
	case DailyEpisode:
		return v.Year
	case MultiEpisode:
		return v.Episodes[0].SeasonNumber()
	default:
		panic(fmt.Sprintf("unhandled identity type %T", id))
	}
}

// IsDaily reports whether the identity uses broadcast-date numbering
func IsDaily(id Identity) bool {
	switch v := id.(type) {
	case SeasonEpisode:
		return false
	case DailyEpisode:
		return true
	case MultiEpisode:
		_, daily := v.Episodes[0].(DailyEpisode)
		return daily
	default:
		panic(fmt.Sprintf("unhandled identity type %T", id))
	}
}

// Same reports whether two identities address the same episode(s). Series
// names are not compared.
func Same(a, b Identity) bool {
	return a.Key() == b.Key()
}

// Validate checks the numbering of an identity
func Validate(id Identity) error {
	switch v := id.(type) {
	case SeasonEpisode:
		if v.Season < 0 || v.Episode < 0 {
			return fmt.Errorf("%w: %s", ErrInvalidNumber, v.Key())
		}
	case DailyEpisode:
		d := v.Date()
		if d.Year() != v.Year || int(d.Month()) != v.Month || d.Day() != v.Day {
			return fmt.Errorf("%w: %s is not a calendar date", ErrInvalidNumber, v.Key())
		}
	case MultiEpisode:
		if len(v.Episodes) == 0 {
			return ErrEmptyMulti
		}
		season := v.Episodes[0].SeasonNumber()
		seen := make(map[string]struct{}, len(v.Episodes))
		for _, m := range v.Episodes {
			if err := Validate(m); err != nil {
				return err
			}
			if m.SeasonNumber() != season {
				return fmt.Errorf("%w: %s", ErrSpansSeasons, v.Key())
			}
			if _, ok := seen[m.Key()]; ok {
				return fmt.Errorf("%w: %s is listed twice in %s", ErrInvalidNumber, m.Key(), v.Key())
			}
			seen[m.Key()] = struct{}{}
		}
	}

	if strings.TrimSpace(id.SeriesName()) == "" {
		return fmt.Errorf("%w: missing series name", ErrInvalidNumber)
	}

	return nil
}

func sameSeries(a, b string) bool {
	return SanitizeName(a, true) == SanitizeName(b, true)
}
