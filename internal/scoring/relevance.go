package scoring

import (
	"sort"

	"github.com/abhisek/disha/internal/quiz"
)

// TopTrackCount is how many relevant tracks the summary view surfaces.
const TopTrackCount = 5

// TopTrack is one ranked entry of the summary view.
type TopTrack struct {
	Track      quiz.Track `json:"track"`
	Score      int        `json:"score"`
	Percentage int        `json:"percentage"`
}

// CareerPath annotates one track for the dashboard superset view.
type CareerPath struct {
	Track       quiz.Track `json:"track"`
	Name        string     `json:"name"`
	Percentage  int        `json:"percentage"`
	Description string     `json:"description"`
	Careers     []string   `json:"careers"`
	Exams       []string   `json:"exams,omitempty"`
	Colleges    []string   `json:"colleges,omitempty"`
	IsRelevant  bool       `json:"isRelevant"`
}

// IsTrackRelevant reports whether a track is applicable to the profile:
// the education level must be in the track's AvailableFor list, and if the
// track requires specific streams and the profile carries a meaningful
// stream, that stream must be among them.
func IsTrackRelevant(t quiz.Track, profile quiz.UserProfile) bool {
	info := t.Info()

	levelOK := false
	for _, l := range info.AvailableFor {
		if l == profile.EducationLevel {
			levelOK = true
			break
		}
	}
	if !levelOK {
		return false
	}

	if len(info.RequiredStreams) > 0 && profile.HasStream() {
		for _, s := range info.RequiredStreams {
			if s == profile.CurrentStream {
				return true
			}
		}
		return false
	}
	return true
}

// TopTracks ranks the profile-relevant tracks by raw score descending and
// returns the first TopTrackCount. Ties keep canonical track order.
func TopTracks(tracks TrackScores, percentages TrackScores, profile quiz.UserProfile) []TopTrack {
	ranked := make([]TopTrack, 0, quiz.NumTracks)
	for _, t := range quiz.AllTracks() {
		if !IsTrackRelevant(t, profile) {
			continue
		}
		ranked = append(ranked, TopTrack{Track: t, Score: tracks[t], Percentage: percentages[t]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > TopTrackCount {
		ranked = ranked[:TopTrackCount]
	}
	return ranked
}

// CareerPaths annotates every track with its relevance and sorts the
// result relevant-first, then by percentage descending. Ties keep
// canonical track order (stable sort), giving dashboards a deterministic
// superset view.
func CareerPaths(tracks TrackScores, percentages TrackScores, profile quiz.UserProfile) []CareerPath {
	paths := make([]CareerPath, 0, quiz.NumTracks)
	for _, t := range quiz.AllTracks() {
		info := t.Info()
		paths = append(paths, CareerPath{
			Track:       t,
			Name:        info.Name,
			Percentage:  percentages[t],
			Description: info.Description,
			Careers:     info.Careers,
			Exams:       info.Exams,
			Colleges:    info.Colleges,
			IsRelevant:  IsTrackRelevant(t, profile),
		})
	}

	sort.SliceStable(paths, func(i, j int) bool {
		if paths[i].IsRelevant != paths[j].IsRelevant {
			return paths[i].IsRelevant
		}
		return paths[i].Percentage > paths[j].Percentage
	})
	return paths
}
