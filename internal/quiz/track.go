package quiz

// Track is one of the closed set of career categories the quiz scores.
type Track string

const (
	TrackJEEPCM         Track = "jee_pcm"           // Engineering / JEE
	TrackPCBMed         Track = "pcb_med"           // Medical / NEET
	TrackCommerce       Track = "commerce"          // Commerce / Business
	TrackCodingIT       Track = "coding_it"         // Software / IT
	TrackDesignCreative Track = "design_creative"   // Design / Creative Arts
	TrackGovtServices   Track = "govt_defense"      // Government services (general)
	TrackAutomotiveMech Track = "automotive_mech"   // Automotive / Mechanical
	TrackUPSCCivil      Track = "upsc_civil"        // UPSC / Civil Services
	TrackDefenseForces  Track = "defense_forces"    // Armed Forces
	TrackAviation       Track = "aviation"          // Aviation / Aerospace
	TrackMaritime       Track = "maritime"          // Maritime / Merchant Navy
	TrackLawLegal       Track = "law_legal"         // Law / Legal
	TrackMedia          Track = "media_journalism"  // Media / Journalism
	TrackPsychology     Track = "psychology"        // Psychology / Counseling
	TrackSportsFitness  Track = "sports_fitness"    // Sports / Fitness
	TrackResearch       Track = "research_academia" // Research / Academia
	TrackAgriculture    Track = "agriculture"       // Agriculture / Agritech
	TrackHospitality    Track = "hospitality"       // Hotel Management / Hospitality
)

// AllTracks returns every track in its canonical order. All score maps and
// result views iterate in this order so output is deterministic.
func AllTracks() []Track {
	return []Track{
		TrackJEEPCM, TrackPCBMed, TrackCommerce, TrackCodingIT,
		TrackDesignCreative, TrackGovtServices, TrackAutomotiveMech,
		TrackUPSCCivil, TrackDefenseForces, TrackAviation, TrackMaritime,
		TrackLawLegal, TrackMedia, TrackPsychology, TrackSportsFitness,
		TrackResearch, TrackAgriculture, TrackHospitality,
	}
}

// NumTracks is the size of the closed track set.
const NumTracks = 18

// IsValid reports whether t is a known track.
func (t Track) IsValid() bool {
	_, ok := trackInfoTable[t]
	return ok
}

// TrackInfo is static, read-only descriptive metadata for a track.
type TrackInfo struct {
	Name        string
	Icon        string
	Description string
	Careers     []string
	Exams       []string
	Colleges    []string
	// AvailableFor lists the education levels that can still pursue this track.
	AvailableFor []EducationLevel
	// RequiredStreams, when non-nil, restricts the track to profiles whose
	// chosen stream is in the list.
	RequiredStreams []Stream
}

// Info returns the static metadata for a track. Unknown tracks return a
// zero TrackInfo; callers should check IsValid first when it matters.
func (t Track) Info() TrackInfo {
	return trackInfoTable[t]
}

var trackInfoTable = map[Track]TrackInfo{
	TrackJEEPCM: {
		Name:         "Engineering / JEE",
		Icon:         "🔧",
		Description:  "Technical problem-solving, mathematics, and physics",
		Careers:      []string{"Engineer", "IIT Graduate", "Tech Lead", "Researcher"},
		Exams:        []string{"JEE Main", "JEE Advanced", "BITSAT", "State CETs"},
		Colleges:     []string{"IITs", "NITs", "BITS Pilani", "IIITs"},
		AvailableFor: []EducationLevel{Level10thPassed, Level11thCurrent, Level12thCurrent, Level12thPassed},
		RequiredStreams: []Stream{StreamPCM, StreamPCMB},
	},
	TrackPCBMed: {
		Name:         "Medical / Biology",
		Icon:         "🩺",
		Description:  "Healthcare, life sciences, and helping people",
		Careers:      []string{"Doctor", "Surgeon", "Dentist", "Pharmacist", "Researcher"},
		Exams:        []string{"NEET UG", "NEET PG", "AIIMS", "JIPMER"},
		Colleges:     []string{"AIIMS", "CMC Vellore", "JIPMER", "Govt Medical Colleges"},
		AvailableFor: []EducationLevel{Level10thPassed, Level11thCurrent, Level12thCurrent, Level12thPassed},
		RequiredStreams: []Stream{StreamPCB, StreamPCMB},
	},
	TrackCommerce: {
		Name:         "Commerce / Business",
		Icon:         "💼",
		Description:  "Business, finance, and entrepreneurship",
		Careers:      []string{"CA", "Entrepreneur", "Investment Banker", "CFO", "Consultant"},
		Exams:        []string{"CA Foundation", "CS", "CMA", "CAT", "CLAT"},
		Colleges:     []string{"SRCC", "Hindu College", "Christ University", "IIMs"},
		AvailableFor: AllEducationLevels(),
		RequiredStreams: []Stream{StreamCommerceMaths, StreamCommerceNoMaths, StreamPCM, StreamPCMB},
	},
	TrackCodingIT: {
		Name:         "Coding / IT",
		Icon:         "💻",
		Description:  "Software development and technology",
		Careers:      []string{"Software Engineer", "Data Scientist", "AI/ML Engineer", "Startup Founder"},
		Exams:        []string{"JEE (for CS)", "GATE", "Coding interviews"},
		Colleges:     []string{"IITs", "IIIT Hyderabad", "BITS", "NITs"},
		AvailableFor: AllEducationLevels(),
	},
	TrackDesignCreative: {
		Name:         "Design / Creative",
		Icon:         "🎨",
		Description:  "Visual arts, design, and creative expression",
		Careers:      []string{"UI/UX Designer", "Animator", "Fashion Designer", "Architect", "Content Creator"},
		Exams:        []string{"NID DAT", "NIFT", "UCEED", "CEED"},
		Colleges:     []string{"NID", "NIFT", "Srishti", "IDC IIT Bombay"},
		AvailableFor: AllEducationLevels(),
	},
	TrackGovtServices: {
		Name:         "Govt Services (General)",
		Icon:         "🏛️",
		Description:  "Public service and government administration",
		Careers:      []string{"Bank PO", "SSC Officer", "Railway Officer", "State Services"},
		Exams:        []string{"SSC CGL", "Bank PO", "State PSC", "Railway"},
		AvailableFor: []EducationLevel{Level12thPassed, LevelDegreeCurrent, LevelDegreeCompleted},
	},
	TrackAutomotiveMech: {
		Name:         "Automotive / Mechanical",
		Icon:         "🏎️",
		Description:  "Cars, engines, machines, and hands-on engineering",
		Careers:      []string{"Automotive Engineer", "F1 Engineer", "EV Specialist", "Mechanical Designer"},
		Exams:        []string{"JEE (for Mech)", "GATE ME"},
		Colleges:     []string{"IIT Delhi", "IIT Bombay", "VIT", "Manipal", "BITS"},
		AvailableFor: []EducationLevel{Level10thPassed, Level11thCurrent, Level12thCurrent, Level12thPassed},
		RequiredStreams: []Stream{StreamPCM, StreamPCMB},
	},
	TrackUPSCCivil: {
		Name:         "UPSC / Civil Services",
		Icon:         "⚖️",
		Description:  "IAS, IPS, IFS - the prestigious civil services",
		Careers:      []string{"IAS Officer", "IPS Officer", "IFS Officer", "IRS Officer"},
		Exams:        []string{"UPSC CSE Prelims", "UPSC CSE Mains", "Interview"},
		Colleges:     []string{"Any graduation", "LAC Delhi", "SRCC"},
		AvailableFor: []EducationLevel{LevelDegreeCurrent, LevelDegreeCompleted, Level12thPassed},
	},
	TrackDefenseForces: {
		Name:         "Armed Forces",
		Icon:         "🪖",
		Description:  "Army, Navy, Air Force - serve the nation",
		Careers:      []string{"Army Officer", "Navy Officer", "Air Force Officer", "Para Commando"},
		Exams:        []string{"NDA", "CDS", "AFCAT", "SSB Interview"},
		Colleges:     []string{"NDA Khadakwasla", "IMA Dehradun", "OTA Chennai", "AFA Hyderabad"},
		AvailableFor: AllEducationLevels(),
	},
	TrackAviation: {
		Name:         "Aviation / Aerospace",
		Icon:         "✈️",
		Description:  "Aircraft, pilots, aerospace engineering",
		Careers:      []string{"Commercial Pilot", "Aerospace Engineer", "ATC Officer", "Aircraft Designer"},
		Exams:        []string{"DGCA CPL", "JEE (Aerospace)", "IGRUA"},
		Colleges:     []string{"IIT Bombay (Aero)", "IIT Kanpur", "IIST", "Flying Schools"},
		AvailableFor: []EducationLevel{Level10thPassed, Level11thCurrent, Level12thCurrent, Level12thPassed},
		RequiredStreams: []Stream{StreamPCM, StreamPCMB},
	},
	TrackMaritime: {
		Name:         "Maritime / Merchant Navy",
		Icon:         "🚢",
		Description:  "Ships, oceans, maritime trade",
		Careers:      []string{"Merchant Navy Officer", "Marine Engineer", "Ship Captain", "Port Manager"},
		Exams:        []string{"IMU CET", "TMISAT", "JEE (Naval Architecture)"},
		Colleges:     []string{"IMU Chennai", "MERI Kolkata", "VELS", "SCI Training"},
		AvailableFor: []EducationLevel{Level10thPassed, Level11thCurrent, Level12thCurrent, Level12thPassed},
		RequiredStreams: []Stream{StreamPCM, StreamPCMB},
	},
	TrackLawLegal: {
		Name:         "Law / Legal",
		Icon:         "⚖️",
		Description:  "Legal profession, courts, justice system",
		Careers:      []string{"Advocate", "Corporate Lawyer", "Judge", "Legal Consultant"},
		Exams:        []string{"CLAT", "AILET", "LSAT India", "Judiciary Exams"},
		Colleges:     []string{"NLUs", "NLSIU Bangalore", "NALSAR", "Faculty of Law DU"},
		AvailableFor: []EducationLevel{Level12thPassed, LevelDegreeCurrent, LevelDegreeCompleted},
	},
	TrackMedia: {
		Name:         "Media / Journalism",
		Icon:         "📺",
		Description:  "News, media, content creation, storytelling",
		Careers:      []string{"Journalist", "News Anchor", "Documentary Maker", "PR Professional"},
		Exams:        []string{"IIMC Entrance", "XIC Mumbai", "ACJ Chennai"},
		Colleges:     []string{"IIMC", "Asian College of Journalism", "XIC Mumbai", "Jamia"},
		AvailableFor: []EducationLevel{Level12thPassed, LevelDegreeCurrent, LevelDegreeCompleted},
	},
	TrackPsychology: {
		Name:         "Psychology / Counseling",
		Icon:         "🧠",
		Description:  "Understanding minds, helping people mentally",
		Careers:      []string{"Psychologist", "Counselor", "Therapist", "HR Specialist"},
		Exams:        []string{"CUET", "TISSNET", "BHU"},
		Colleges:     []string{"TISS", "Christ University", "DU", "JNU"},
		AvailableFor: []EducationLevel{Level12thPassed, LevelDegreeCurrent, LevelDegreeCompleted},
	},
	TrackSportsFitness: {
		Name:         "Sports / Fitness",
		Icon:         "🏆",
		Description:  "Athletics, sports management, fitness training",
		Careers:      []string{"Professional Athlete", "Sports Manager", "Fitness Trainer", "Sports Analyst"},
		Exams:        []string{"Sports Authority Tests", "BPES", "SAI"},
		Colleges:     []string{"LNIPE Gwalior", "NSNIS Patiala", "SAI Centers"},
		AvailableFor: AllEducationLevels(),
	},
	TrackResearch: {
		Name:         "Research / Academia",
		Icon:         "🔬",
		Description:  "Scientific research, teaching, PhD paths",
		Careers:      []string{"Scientist", "Professor", "Research Fellow", "Lab Director"},
		Exams:        []string{"CSIR NET", "GATE", "UGC NET", "JEST"},
		Colleges:     []string{"IISc", "TIFR", "IITs", "IISER", "JNU"},
		AvailableFor: []EducationLevel{LevelDegreeCurrent, LevelDegreeCompleted},
	},
	TrackAgriculture: {
		Name:         "Agriculture / Agritech",
		Icon:         "🌾",
		Description:  "Farming, agricultural science, food technology",
		Careers:      []string{"Agricultural Scientist", "Agripreneur", "Food Technologist", "Agronomist"},
		Exams:        []string{"ICAR AIEEA", "State Agri Entrance", "IARI"},
		Colleges:     []string{"IARI Delhi", "TNAU", "PAU", "GBPUAT"},
		AvailableFor: []EducationLevel{Level10thPassed, Level11thCurrent, Level12thCurrent, Level12thPassed},
		RequiredStreams: []Stream{StreamPCB, StreamPCMB, StreamPCM},
	},
	TrackHospitality: {
		Name:         "Hotel / Hospitality",
		Icon:         "🏨",
		Description:  "Hotels, tourism, culinary arts",
		Careers:      []string{"Hotel Manager", "Chef", "Event Manager", "Travel Consultant"},
		Exams:        []string{"NCHMCT JEE", "IHM Entrance"},
		Colleges:     []string{"IHM Delhi", "IHM Mumbai", "WGSHA Manipal"},
		AvailableFor: []EducationLevel{Level12thPassed, LevelDegreeCurrent, LevelDegreeCompleted},
	},
}
