package content

// Portfolio is the full dataset for one language.
type Portfolio struct {
	Personal   Personal     `json:"personal"`
	About      string       `json:"about" validate:"required"`
	Skills     Skills       `json:"skills"`
	Projects   []Project    `json:"projects" validate:"dive"`
	Objectives []string     `json:"objectives" validate:"dive,required"`
	Education  Education    `json:"education"`
	Experience []Experience `json:"experience" validate:"dive"`
	Hobbies    []string     `json:"hobbies" validate:"dive,required"`
}

// Personal is the identity block shown in the hero and the CV header.
type Personal struct {
	Name    string `json:"name" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	DOB     string `json:"dob" validate:"required"`
	Avatar  string `json:"avatar" validate:"required,uri"`
}

// Skills holds the three fixed skill categories.
type Skills struct {
	Backend  []Skill `json:"backend" validate:"dive"`
	Frontend []Skill `json:"frontend" validate:"dive"`
	Tools    []Skill `json:"tools" validate:"dive"`
}

type Skill struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// Project is rendered as a card on the landing page and as an entry in the CV.
// GitHub is optional; when empty the card is not interactive.
type Project struct {
	Name        string   `json:"name" validate:"required"`
	Subtitle    string   `json:"subtitle"`
	Period      string   `json:"period" validate:"required"`
	Role        string   `json:"role" validate:"required"`
	Team        string   `json:"team"`
	Description string   `json:"description" validate:"required"`
	Tech        []string `json:"tech" validate:"dive,required"`
	Highlights  []string `json:"highlights" validate:"dive,required"`
	GitHub      string   `json:"github,omitempty" validate:"omitempty,http_url"`
}

// HasRepository reports whether the project links to an external repository.
func (p Project) HasRepository() bool {
	return p.GitHub != ""
}

type Education struct {
	School       string   `json:"school" validate:"required"`
	Period       string   `json:"period" validate:"required"`
	Major        string   `json:"major" validate:"required"`
	Achievements []string `json:"achievements" validate:"dive,required"`
}

type Experience struct {
	Company     string   `json:"company" validate:"required"`
	Position    string   `json:"position" validate:"required"`
	Period      string   `json:"period" validate:"required"`
	Description []string `json:"description" validate:"dive,required"`
}
