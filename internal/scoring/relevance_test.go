package scoring

import (
	"testing"

	"github.com/abhisek/disha/internal/quiz"
)

func TestIsTrackRelevant(t *testing.T) {
	tests := []struct {
		name    string
		track   quiz.Track
		profile quiz.UserProfile
		want    bool
	}{
		{
			name:    "jee available at 10th passed without a stream",
			track:   quiz.TrackJEEPCM,
			profile: quiz.UserProfile{Name: "A", EducationLevel: quiz.Level10thPassed},
			want:    true,
		},
		{
			name:    "jee closed to graduates",
			track:   quiz.TrackJEEPCM,
			profile: quiz.UserProfile{Name: "A", EducationLevel: quiz.LevelDegreeCompleted, DegreeType: quiz.DegreeBTech},
			want:    false,
		},
		{
			name:    "jee requires a science maths stream once chosen",
			track:   quiz.TrackJEEPCM,
			profile: quiz.UserProfile{Name: "A", EducationLevel: quiz.Level11thCurrent, CurrentStream: quiz.StreamArtsHumanities},
			want:    false,
		},
		{
			name:    "jee open to pcm in 12th",
			track:   quiz.TrackJEEPCM,
			profile: quiz.UserProfile{Name: "A", EducationLevel: quiz.Level12thCurrent, CurrentStream: quiz.StreamPCM},
			want:    true,
		},
		{
			name:    "medical requires a biology stream",
			track:   quiz.TrackPCBMed,
			profile: quiz.UserProfile{Name: "A", EducationLevel: quiz.Level11thCurrent, CurrentStream: quiz.StreamPCM},
			want:    false,
		},
		{
			name:    "pcmb satisfies the medical stream requirement",
			track:   quiz.TrackPCBMed,
			profile: quiz.UserProfile{Name: "A", EducationLevel: quiz.Level11thCurrent, CurrentStream: quiz.StreamPCMB},
			want:    true,
		},
		{
			name:    "coding has no stream requirement",
			track:   quiz.TrackCodingIT,
			profile: quiz.UserProfile{Name: "A", EducationLevel: quiz.Level12thCurrent, CurrentStream: quiz.StreamArtsHumanities},
			want:    true,
		},
		{
			name:    "research only opens at degree stage",
			track:   quiz.TrackResearch,
			profile: quiz.UserProfile{Name: "A", EducationLevel: quiz.Level12thPassed},
			want:    false,
		},
		{
			name:    "upsc open during degree",
			track:   quiz.TrackUPSCCivil,
			profile: quiz.UserProfile{Name: "A", EducationLevel: quiz.LevelDegreeCurrent, DegreeType: quiz.DegreeBA},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTrackRelevant(tt.track, tt.profile); got != tt.want {
				t.Errorf("IsTrackRelevant(%s) = %v, want %v", tt.track, got, tt.want)
			}
		})
	}
}

func TestTopTracks(t *testing.T) {
	profile := quiz.UserProfile{Name: "A", EducationLevel: quiz.Level10thPassed}

	tracks := NewTrackScores()
	tracks[quiz.TrackJEEPCM] = 23
	tracks[quiz.TrackCodingIT] = 9
	tracks[quiz.TrackAutomotiveMech] = 12
	tracks[quiz.TrackResearch] = 50 // not relevant at 10th passed
	pcts := Percentages(tracks)

	top := TopTracks(tracks, pcts, profile)

	if len(top) != TopTrackCount {
		t.Fatalf("len(top) = %d, want %d", len(top), TopTrackCount)
	}
	if top[0].Track != quiz.TrackJEEPCM || top[1].Track != quiz.TrackAutomotiveMech || top[2].Track != quiz.TrackCodingIT {
		t.Errorf("ranking = %s, %s, %s", top[0].Track, top[1].Track, top[2].Track)
	}
	for _, tt := range top {
		if tt.Track == quiz.TrackResearch {
			t.Error("irrelevant track ranked in top tracks")
		}
		if !IsTrackRelevant(tt.Track, profile) {
			t.Errorf("top track %s is not relevant to the profile", tt.Track)
		}
	}
	if top[0].Percentage != pcts[quiz.TrackJEEPCM] {
		t.Errorf("top[0].Percentage = %d, want %d", top[0].Percentage, pcts[quiz.TrackJEEPCM])
	}
}

func TestTopTracks_TiesKeepCanonicalOrder(t *testing.T) {
	profile := quiz.UserProfile{Name: "A", EducationLevel: quiz.Level10thPassed}
	tracks := NewTrackScores() // everything tied at zero
	top := TopTracks(tracks, Percentages(tracks), profile)

	want := []quiz.Track{}
	for _, tr := range quiz.AllTracks() {
		if IsTrackRelevant(tr, profile) {
			want = append(want, tr)
		}
		if len(want) == TopTrackCount {
			break
		}
	}
	for i := range top {
		if top[i].Track != want[i] {
			t.Errorf("top[%d] = %s, want %s (canonical order on ties)", i, top[i].Track, want[i])
		}
	}
}

func TestCareerPaths(t *testing.T) {
	profile := quiz.UserProfile{Name: "A", EducationLevel: quiz.Level10thPassed}

	tracks := NewTrackScores()
	tracks[quiz.TrackCommerce] = 20
	tracks[quiz.TrackResearch] = 45
	pcts := Percentages(tracks)

	paths := CareerPaths(tracks, pcts, profile)

	if len(paths) != quiz.NumTracks {
		t.Fatalf("len(paths) = %d, want %d (superset covers every track)", len(paths), quiz.NumTracks)
	}

	// Relevant entries must precede irrelevant ones.
	seenIrrelevant := false
	for _, p := range paths {
		if !p.IsRelevant {
			seenIrrelevant = true
		} else if seenIrrelevant {
			t.Fatalf("relevant track %s sorted after an irrelevant one", p.Track)
		}
	}

	if paths[0].Track != quiz.TrackCommerce {
		t.Errorf("paths[0] = %s, want commerce (highest relevant percentage)", paths[0].Track)
	}
	for _, p := range paths {
		if p.Track == quiz.TrackResearch && p.IsRelevant {
			t.Error("research marked relevant at 10th passed")
		}
		if p.Name == "" || p.Description == "" {
			t.Errorf("track %s missing display metadata", p.Track)
		}
	}
}

func TestTopTracksSubsetOfRelevantCareerPaths(t *testing.T) {
	profile := quiz.UserProfile{Name: "A", EducationLevel: quiz.Level12thPassed}
	tracks := NewTrackScores()
	tracks[quiz.TrackLawLegal] = 12
	tracks[quiz.TrackMedia] = 8
	pcts := Percentages(tracks)

	relevant := map[quiz.Track]bool{}
	for _, p := range CareerPaths(tracks, pcts, profile) {
		if p.IsRelevant {
			relevant[p.Track] = true
		}
	}
	for _, tt := range TopTracks(tracks, pcts, profile) {
		if !relevant[tt.Track] {
			t.Errorf("top track %s absent from relevant career paths", tt.Track)
		}
	}
}
