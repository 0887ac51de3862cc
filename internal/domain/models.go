package domain

// ExperienceLevel is the self-reported market familiarity collected during onboarding.
type ExperienceLevel string

const (
	ExperienceNewbie       ExperienceLevel = "Newbie"
	ExperienceIntermediate ExperienceLevel = "Intermediate"
)

// ExperienceLevels lists the selectable levels in display order.
var ExperienceLevels = []ExperienceLevel{ExperienceNewbie, ExperienceIntermediate}

// Blurb is the one-line description shown next to a level.
func (l ExperienceLevel) Blurb() string {
	if l == ExperienceNewbie {
		return "Just starting out"
	}
	return "I know the basics"
}

// AvatarChoice is a persona offered by the onboarding wizard.
type AvatarChoice struct {
	ID   string
	Name string
	Desc string
}

// Avatars lists the personas a new user can pick from.
var Avatars = []AvatarChoice{
	{ID: "clara", Name: "Professional Clara", Desc: "Strategy focused"},
	{ID: "maya", Name: "Student Maya", Desc: "Growth seeker"},
}

// Goals lists the long-term goals a new user can pick from.
var Goals = []string{"Family Fund", "Career Break", "Wealth Building"}

// UserData is the locally held identity produced by onboarding or login.
// It is replaced wholesale, never patched field by field.
type UserData struct {
	Username   string          `json:"username"`
	Avatar     string          `json:"avatar"`
	Experience ExperienceLevel `json:"experience,omitempty"`
	Goal       string          `json:"goal"`
	XP         *int            `json:"xp,omitempty"`
}

// XPOrZero returns the experience points, treating an unknown count as zero.
func (u UserData) XPOrZero() int {
	if u.XP == nil {
		return 0
	}
	return *u.XP
}

// WithXP returns a copy of u carrying xp.
func (u UserData) WithXP(xp int) UserData {
	u.XP = &xp
	return u
}

// User is the account identity embedded in a profile.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserProfile is the server-side profile envelope.
type UserProfile struct {
	ID     int    `json:"id"`
	User   User   `json:"user"`
	Avatar string `json:"avatar"`
	Goal   string `json:"goal"`
	XP     int    `json:"xp"`
}

// ToUserData maps a profile envelope into the local user-data shape.
func (p UserProfile) ToUserData() UserData {
	return UserData{
		Username: p.User.Username,
		Avatar:   p.Avatar,
		Goal:     p.Goal,
	}.WithXP(p.XP)
}

// Scenario is a persona-led quiz track. The trailing fields are display
// decoration attached client-side by Decorate.
type Scenario struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	NameDisplay string `json:"name_display"`
	Description string `json:"description"`

	Subtitle   string   `json:"subtitle,omitempty"`
	Image      string   `json:"image,omitempty"`
	Color      string   `json:"color,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
}

// QuizOption is one answer of a question.
type QuizOption struct {
	ID         int    `json:"id"`
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct"`
}

// QuizQuestion is a multiple-choice question bound to a scenario.
type QuizQuestion struct {
	ID           int          `json:"id"`
	Scenario     int          `json:"scenario"`
	ScenarioName string       `json:"scenario_name"`
	QuestionText string       `json:"question_text"`
	XPReward     int          `json:"xp_reward"`
	Options      []QuizOption `json:"options"`
}

// Option returns the option with the given id.
func (q QuizQuestion) Option(id int) (QuizOption, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return QuizOption{}, false
}

// ProgressStatus is the completion state of a scenario for a user.
type ProgressStatus string

const (
	StatusUnsolved   ProgressStatus = "UNSOLVED"
	StatusInProgress ProgressStatus = "IN_PROGRESS"
	StatusSolved     ProgressStatus = "SOLVED"
)

// Label is the human readable status.
func (s ProgressStatus) Label() string {
	switch s {
	case StatusInProgress:
		return "In Progress"
	case StatusSolved:
		return "Solved"
	default:
		return "Unsolved"
	}
}

// UserScenarioProgress tracks a user's standing in one scenario.
type UserScenarioProgress struct {
	ID              int            `json:"id"`
	User            int            `json:"user"`
	Scenario        int            `json:"scenario"`
	ScenarioDetails Scenario       `json:"scenario_details"`
	Status          ProgressStatus `json:"status"`
}

// Credentials is the login/register request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Avatar   string `json:"avatar,omitempty"`
	Goal     string `json:"goal,omitempty"`
}

// XPAward is the add_xp request body.
type XPAward struct {
	Username string `json:"username"`
	Amount   int    `json:"amount"`
}
