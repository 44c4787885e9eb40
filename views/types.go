package views

// Post is a single reviewable content item as stored in the backend posts
// table. Timestamps stay strings on purpose: a malformed value coming back
// from the backend must degrade to a display placeholder, not fail decoding.
type Post struct {
	ID              string  `json:"id"`
	CreatedAt       string  `json:"created_at"`
	ArticleBlogURL  string  `json:"article_blog_url"`
	SocialNetwork   string  `json:"social_network"`
	Text            string  `json:"text"`
	Image           *string `json:"image"`
	Status          string  `json:"status"`
	PublicationDate *string `json:"publication_date"`
}

// Known social networks. Anything else (including empty) is treated as unknown.
const (
	NetworkLinkedIn  = "linkedin"
	NetworkTwitter   = "twitter"
	NetworkFacebook  = "facebook"
	NetworkInstagram = "instagram"
	NetworkUnknown   = "unknown"
)

// Statuses offered by the edit surface.
const (
	StatusToVerify  = "A vérifier"
	StatusValidated = "Validé"
	StatusRejected  = "Rejeté"
)

// Networks lists the filterable networks in display order.
func Networks() []string {
	return []string{NetworkTwitter, NetworkLinkedIn, NetworkFacebook, NetworkInstagram}
}

// EditStatuses lists the statuses an operator can assign to a post.
func EditStatuses() []string {
	return []string{StatusToVerify, StatusValidated, StatusRejected}
}

// FilterStatuses lists the statuses offered by the filter dropdown. This set
// deliberately differs from EditStatuses: the two surfaces disagreed in the
// product and unifying them silently would hide records carrying the legacy
// values.
func FilterStatuses() []string {
	return []string{"A valider", "A publier", "Publié", "Rejeté"}
}

// DashboardData carries everything the dashboard page needs.
type DashboardData struct {
	Posts   []Post // already filtered for display
	Network string // active network filter ("all" for none)
	Status  string // active status filter ("all" for none)
	Errored bool
	ErrMsg  string
	Flash   string
	CSRF    string
}

// ModalData carries the edit modal's state: the post being edited plus the
// current edit-buffer values, which may differ from the post after a failed
// save.
type ModalData struct {
	Post      Post
	Text      string
	Status    string
	DateInput string // local wall-clock value for the datetime-local input
	ImageURL  string
	ErrMsg    string
	CSRF      string
}
