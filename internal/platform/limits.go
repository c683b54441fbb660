package platform

// AdLimits are the creative constraints a platform enforces. A zero length
// limit means the field is unbounded.
type AdLimits struct {
	HeadlineMax      int
	DescriptionMax   int
	DisplayURLMax    int
	CallToActionMax  int
	RequireFinalURL  bool
	RequireHeadline  bool
	AllowedCTAs      []string
	FallbackHeadline string
	FallbackCTA      string
}
