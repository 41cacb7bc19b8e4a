package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/kasuboski/tvsort/pkg/episode"
)

var ErrUnknownParameter = errors.New("unknown template parameter")

var (
	placeholderRegex = regexp.MustCompile(`\$\(([^)]+)\)`)
	whitespaceRegex  = regexp.MustCompile(`\s`)
	invalidChars     = strings.NewReplacer("/", "-", "\\", "-", ":", " -", "*", "", "?", "", "\"", "", "<", "", ">", "", "|", "")
)

// Templates holds the user supplied patterns. Placeholders are written as
// $(name), for example "$(series) - $(season_episode_1)".
type Templates struct {
	Series        string `json:"series" yaml:"series" mapstructure:"series" validate:"required"`
	Season        string `json:"season" yaml:"season" mapstructure:"season" validate:"required"`
	SeriesEpisode string `json:"seriesEpisode" yaml:"seriesEpisode" mapstructure:"seriesEpisode" validate:"required"`
	DailyEpisode  string `json:"dailyEpisode" yaml:"dailyEpisode" mapstructure:"dailyEpisode" validate:"required"`
	SmartTitle    string `json:"smartTitle" yaml:"smartTitle" mapstructure:"smartTitle"`
}

// DefaultTemplates produce names the release parser can read back
func DefaultTemplates() Templates {
	return Templates{
		Series:        "$(series)",
		Season:        "Season $(season)",
		SeriesEpisode: "$(series) - $(season_episode_1)$(smart_title)",
		DailyEpisode:  "$(series) - $(daily.)$(smart_title)",
		SmartTitle:    " - $(title)",
	}
}

// SuffixLayout is the time layout of duplicate disambiguation suffixes
const SuffixLayout = "200601021504"

// DuplicateSuffix returns the suffix given to a file that would otherwise collide with an existing episode
func DuplicateSuffix(t time.Time) string {
	return t.Format(SuffixLayout)
}

// Formatter turns identities into relative path components
type Formatter struct {
	templates Templates
}

func New(templates Templates) *Formatter {
	return &Formatter{templates: templates}
}

// SeriesPath formats the series directory name
func (f *Formatter) SeriesPath(series string, id episode.Identity) (string, error) {
	name, err := render(f.templates.Series, seriesParams(series))
	if err != nil {
		return "", err
	}
	return cleanName(name), nil
}

// SeasonPath formats the season directory name. Daily series use the
// four digit broadcast year.
func (f *Formatter) SeasonPath(series string, id episode.Identity) (string, error) {
	if episode.IsDaily(id) {
		return fmt.Sprintf("%04d", episode.SeasonOf(id)), nil
	}

	params := seriesParams(series)
	addSeason(params, episode.SeasonOf(id))

	name, err := render(f.templates.Season, params)
	if err != nil {
		return "", err
	}
	return cleanName(name), nil
}

// EpisodeFilename formats the file name including the extension. A non-empty
// suffix is appended before the extension to disambiguate duplicates.
func (f *Formatter) EpisodeFilename(series string, id episode.Identity, ext, suffix string) (string, error) {
	params := Params(series, id)

	template := f.templates.SeriesEpisode
	if episode.IsDaily(id) {
		template = f.templates.DailyEpisode
	}

	smart := ""
	if f.templates.SmartTitle != "" && params["title"] != "" {
		var err error
		smart, err = render(f.templates.SmartTitle, params)
		if err != nil {
			return "", err
		}
	}
	params["smart_title"] = smart
	params["SMART_TITLE"] = strings.ToUpper(smart)

	name, err := render(template, params)
	if err != nil {
		return "", err
	}

	if suffix != "" {
		name += "." + suffix
	}

	ext = strings.TrimPrefix(ext, ".")
	if ext != "" {
		name += "." + ext
	}

	return cleanName(name), nil
}

// Params returns every placeholder value supported for an identity
func Params(series string, id episode.Identity) map[string]string {
	params := seriesParams(series)
	addTitle(params, id.EpisodeTitle())

	members := episode.Members(id)
	if episode.IsDaily(id) {
		addDaily(params, members)
		return params
	}

	addSeason(params, episode.SeasonOf(id))

	var episodes, se1, se2 []string
	for i, m := range members {
		se := m.(episode.SeasonEpisode)
		episodes = append(episodes, fmt.Sprintf("%02d", se.Episode))
		if i == 0 {
			se1 = append(se1, fmt.Sprintf("s%02de%02d", se.Season, se.Episode))
		} else {
			se1 = append(se1, fmt.Sprintf("e%02d", se.Episode))
		}
		se2 = append(se2, fmt.Sprintf("%dx%02d", se.Season, se.Episode))
	}

	params["episode"] = strings.Join(episodes, "-")
	params["EPISODE"] = params["episode"]
	params["season_episode_1"] = strings.Join(se1, "")
	params["season_episode_2"] = strings.Join(se2, "-")
	params["SEASON_EPISODE_1"] = strings.ToUpper(params["season_episode_1"])
	params["SEASON_EPISODE_2"] = strings.ToUpper(params["season_episode_2"])

	return params
}

func seriesParams(series string) map[string]string {
	params := map[string]string{
		"series":  series,
		"series.": whitespaceRegex.ReplaceAllString(series, "."),
		"series_": whitespaceRegex.ReplaceAllString(series, "_"),
	}
	params["SERIES"] = strings.ToUpper(params["series"])
	params["SERIES."] = strings.ToUpper(params["series."])
	params["SERIES_"] = strings.ToUpper(params["series_"])
	return params
}

func addSeason(params map[string]string, season int) {
	params["season"] = fmt.Sprintf("%d", season)
	params["SEASON"] = params["season"]
}

func addTitle(params map[string]string, title string) {
	params["title"] = title
	params["title."] = whitespaceRegex.ReplaceAllString(title, ".")
	params["title_"] = whitespaceRegex.ReplaceAllString(title, "_")
	params["TITLE"] = strings.ToUpper(params["title"])
	params["TITLE."] = strings.ToUpper(params["title."])
	params["TITLE_"] = strings.ToUpper(params["title_"])
}

func addDaily(params map[string]string, members []episode.Member) {
	layouts := map[string]string{
		"daily":  "20060102",
		"daily.": "2006.01.02",
		"daily-": "2006-01-02",
		"daily_": "2006_01_02",
	}

	for key, layout := range layouts {
		dates := make([]string, len(members))
		for i, m := range members {
			dates[i] = m.(episode.DailyEpisode).Date().Format(layout)
		}
		params[key] = strings.Join(dates, "&")
		params[strings.ToUpper(key)] = params[key]
	}
}

func render(template string, params map[string]string) (string, error) {
	var missing []string
	out := placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		key := match[2 : len(match)-1]
		value, ok := params[key]
		if !ok {
			missing = append(missing, key)
			return match
		}
		return value
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrUnknownParameter, strings.Join(missing, ", "))
	}

	return out, nil
}

// cleanName strips characters that are not allowed in a single path component
func cleanName(name string) string {
	name = invalidChars.Replace(name)
	name = strings.Join(strings.Fields(name), " ")
	return strings.Trim(name, ". "+string(filepath.Separator))
}
