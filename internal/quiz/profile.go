package quiz

import "fmt"

// EducationLevel represents the respondent's current stage of education.
type EducationLevel string

const (
	Level10thPassed      EducationLevel = "10th_passed"      // Just completed 10th, choosing stream
	Level11thCurrent     EducationLevel = "11th_current"     // Currently in 11th
	Level12thCurrent     EducationLevel = "12th_current"     // Currently in 12th
	Level12thPassed      EducationLevel = "12th_passed"      // Completed 12th, choosing career
	LevelDegreeCurrent   EducationLevel = "degree_current"   // Currently in degree
	LevelDegreeCompleted EducationLevel = "degree_completed" // Completed degree
)

// AllEducationLevels returns the six levels in their natural order.
func AllEducationLevels() []EducationLevel {
	return []EducationLevel{
		Level10thPassed,
		Level11thCurrent,
		Level12thCurrent,
		Level12thPassed,
		LevelDegreeCurrent,
		LevelDegreeCompleted,
	}
}

// LevelInfo holds display metadata for an education level.
type LevelInfo struct {
	Label       string
	Description string
}

// LevelDisplay returns display metadata for a level.
func LevelDisplay(l EducationLevel) LevelInfo {
	switch l {
	case Level10thPassed:
		return LevelInfo{"10th Passed", "Just completed 10th, choosing stream for 11th"}
	case Level11thCurrent:
		return LevelInfo{"In 11th Class", "Currently studying in 11th standard"}
	case Level12thCurrent:
		return LevelInfo{"In 12th Class", "Currently studying in 12th standard"}
	case Level12thPassed:
		return LevelInfo{"12th Passed", "Completed 12th, choosing career/college"}
	case LevelDegreeCurrent:
		return LevelInfo{"In College", "Currently pursuing graduation"}
	case LevelDegreeCompleted:
		return LevelInfo{"Degree Completed", "Graduated, looking for career direction"}
	default:
		return LevelInfo{string(l), ""}
	}
}

// HasStreamChoice reports whether a level implies an already-chosen
// academic stream (11th/12th students carry one; everyone else does not).
func (l EducationLevel) HasStreamChoice() bool {
	return l == Level11thCurrent || l == Level12thCurrent
}

// HasDegree reports whether a level implies a degree in progress or done.
func (l EducationLevel) HasDegree() bool {
	return l == LevelDegreeCurrent || l == LevelDegreeCompleted
}

// IsValid reports whether l is one of the six known levels.
func (l EducationLevel) IsValid() bool {
	for _, known := range AllEducationLevels() {
		if l == known {
			return true
		}
	}
	return false
}

// Stream represents an 11th/12th academic stream.
type Stream string

const (
	StreamPCM             Stream = "pcm"
	StreamPCB             Stream = "pcb"
	StreamPCMB            Stream = "pcmb"
	StreamCommerceMaths   Stream = "commerce_maths"
	StreamCommerceNoMaths Stream = "commerce_no_maths"
	StreamArtsHumanities  Stream = "arts_humanities"
	StreamOther           Stream = "other"
	StreamNotApplicable   Stream = "not_applicable"
)

// AllStreams returns the selectable streams in display order.
// StreamNotApplicable is the sentinel for profiles without a stream choice.
func AllStreams() []Stream {
	return []Stream{
		StreamPCM,
		StreamPCB,
		StreamPCMB,
		StreamCommerceMaths,
		StreamCommerceNoMaths,
		StreamArtsHumanities,
		StreamOther,
	}
}

// StreamInfo holds display metadata for a stream.
type StreamInfo struct {
	Label    string
	Subjects string
}

// StreamDisplay returns display metadata for a stream.
func StreamDisplay(s Stream) StreamInfo {
	switch s {
	case StreamPCM:
		return StreamInfo{"PCM (Science)", "Physics, Chemistry, Maths"}
	case StreamPCB:
		return StreamInfo{"PCB (Medical)", "Physics, Chemistry, Biology"}
	case StreamPCMB:
		return StreamInfo{"PCMB (All Science)", "Physics, Chemistry, Maths, Biology"}
	case StreamCommerceMaths:
		return StreamInfo{"Commerce with Maths", "Accounts, Economics, Maths"}
	case StreamCommerceNoMaths:
		return StreamInfo{"Commerce without Maths", "Accounts, Economics, Business Studies"}
	case StreamArtsHumanities:
		return StreamInfo{"Arts / Humanities", "History, Polity, Literature, etc."}
	case StreamOther:
		return StreamInfo{"Other", "Vocational / Other streams"}
	case StreamNotApplicable:
		return StreamInfo{"Not Applicable", ""}
	default:
		return StreamInfo{string(s), ""}
	}
}

// IsScienceMaths reports whether the stream keeps the JEE path open.
func (s Stream) IsScienceMaths() bool {
	return s == StreamPCM || s == StreamPCMB
}

// DegreeType represents the kind of degree a college-level respondent holds.
type DegreeType string

const (
	DegreeBTech         DegreeType = "btech_engineering"
	DegreeBSc           DegreeType = "bsc_science"
	DegreeBCom          DegreeType = "bcom_commerce"
	DegreeBA            DegreeType = "ba_arts"
	DegreeMBBS          DegreeType = "mbbs_medical"
	DegreeBBA           DegreeType = "bba_management"
	DegreeBCA           DegreeType = "bca_computer"
	DegreeLLB           DegreeType = "law_llb"
	DegreeBDes          DegreeType = "bdes_design"
	DegreeOther         DegreeType = "other"
	DegreeNotApplicable DegreeType = "not_applicable"
)

// AllDegreeTypes returns the selectable degree types in display order.
func AllDegreeTypes() []DegreeType {
	return []DegreeType{
		DegreeBTech,
		DegreeBSc,
		DegreeBCom,
		DegreeBA,
		DegreeMBBS,
		DegreeBBA,
		DegreeBCA,
		DegreeLLB,
		DegreeBDes,
		DegreeOther,
	}
}

// DegreeLabel returns a human-readable label for a degree type.
func DegreeLabel(d DegreeType) string {
	switch d {
	case DegreeBTech:
		return "B.Tech / B.E."
	case DegreeBSc:
		return "B.Sc."
	case DegreeBCom:
		return "B.Com."
	case DegreeBA:
		return "B.A."
	case DegreeMBBS:
		return "MBBS / BDS"
	case DegreeBBA:
		return "BBA"
	case DegreeBCA:
		return "BCA"
	case DegreeLLB:
		return "LL.B."
	case DegreeBDes:
		return "B.Des."
	case DegreeOther:
		return "Other"
	case DegreeNotApplicable:
		return "Not Applicable"
	default:
		return string(d)
	}
}

// UserProfile describes one respondent for the duration of a quiz attempt.
// Created once by the profile collector and immutable afterwards.
type UserProfile struct {
	Name           string         `json:"name"`
	EducationLevel EducationLevel `json:"educationLevel"`
	CurrentStream  Stream         `json:"currentStream,omitempty"`
	DegreeType     DegreeType     `json:"degreeType,omitempty"`
	DegreeName     string         `json:"degreeName,omitempty"`
}

// HasStream reports whether the profile carries a meaningful stream choice.
func (p UserProfile) HasStream() bool {
	return p.CurrentStream != "" && p.CurrentStream != StreamNotApplicable
}

// Validate checks the profile invariants: a stream is only meaningful when
// the education level implies one, and degree fields only when the level
// implies a degree.
func (p UserProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile: name is required")
	}
	if !p.EducationLevel.IsValid() {
		return fmt.Errorf("profile: unknown education level %q", p.EducationLevel)
	}
	if p.HasStream() && !p.EducationLevel.HasStreamChoice() {
		return fmt.Errorf("profile: stream %q not meaningful at level %q", p.CurrentStream, p.EducationLevel)
	}
	if p.DegreeType != "" && p.DegreeType != DegreeNotApplicable && !p.EducationLevel.HasDegree() {
		return fmt.Errorf("profile: degree %q not meaningful at level %q", p.DegreeType, p.EducationLevel)
	}
	return nil
}
