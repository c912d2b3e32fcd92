package badge

import (
	"regexp"
	"strings"

	"github.com/aferraro/badge-scanner/constants"
)

// Pattern-matched contact info gets a fixed high confidence; heuristic
// categories accumulate additively and are clamped to [0, heuristicCap].
const (
	emailConfidence = 0.95
	phoneConfidence = 0.90
	heuristicCap    = 0.9
)

var (
	reEmail = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	rePhone = regexp.MustCompile(`(\+?1[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)

	// Strict capitalized-words shape a person's name must take.
	reNameShape = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]*\.?)*(?:\s+[A-Z][a-z]+)*$`)
	reTwoWords  = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+$`)

	reLegalSuffix = regexp.MustCompile(`\b(Inc|LLC|Corp|Ltd|Company|Technologies|Solutions|Systems|Labs)\b`)
	reRoleWord    = regexp.MustCompile(`\b(Manager|Director|Engineer|CEO|CTO|President)\b`)

	// Job-title patterns. Each match contributes to the title score.
	titlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(CEO|CTO|CFO|COO|CIO|CMO|VP|SVP|EVP)\b`),
		regexp.MustCompile(`\b(Engineer|Developer|Manager|Director|Designer|Architect|Analyst|Consultant|Specialist|Coordinator|Administrator|Founder)\b`),
		regexp.MustCompile(`\b(Head of|Chief)\s+[A-Za-z]+`),
		regexp.MustCompile(`\b(Software|Product|Marketing|Sales|Engineering|Design|Data|Finance|Operations|Technical)\s+(Engineer|Manager|Director|Designer|Developer|Analyst|Lead)\b`),
		regexp.MustCompile(`\bDr\.\s+[A-Z][a-z]+`),
	}

	reCompanyStrong = regexp.MustCompile(`\b(Inc|LLC|Corp|Ltd)\b`)
	reCompanyTech   = regexp.MustCompile(`\b(Technologies|Solutions|Systems|Labs)\b`)
	reCompanyGroup  = regexp.MustCompile(`\b(Company|Group|Partners|Enterprises|Industries|Services)\b`)
)

// Classifier turns raw scan text into a CandidateSet. Stateless and safe for
// concurrent use; every scan is independent.
type Classifier struct {
	filter *lineFilter
}

func NewClassifier() *Classifier {
	return &Classifier{filter: newLineFilter()}
}

// Classify splits the raw text, drops noise lines, and scores every relevant
// line against all five categories independently. Deterministic: the same
// text always yields the same candidate set.
func (c *Classifier) Classify(raw string) *CandidateSet {
	cs := &CandidateSet{}
	for _, line := range SplitLines(raw) {
		if c.filter.relevant(line) {
			cs.Relevant = append(cs.Relevant, line)
		} else {
			cs.Filtered = append(cs.Filtered, line)
		}
	}

	for i, line := range cs.Relevant {
		first := i == 0
		if cand := scoreEmail(line); cand != nil {
			cs.add(*cand)
		}
		if cand := scorePhone(line); cand != nil {
			cs.add(*cand)
		}
		if cand := scoreName(line, first); cand != nil {
			cs.add(*cand)
		}
		if cand := scoreTitle(line); cand != nil {
			cs.add(*cand)
		}
		if cand := scoreCompany(line); cand != nil {
			cs.add(*cand)
		}
	}
	return cs
}

// scoreEmail matches a local@domain.tld shape. The candidate text is the
// matched substring only, not the whole line.
func scoreEmail(line Line) *Candidate {
	match := reEmail.FindString(line.Text)
	if match == "" {
		return nil
	}
	return &Candidate{
		Line:       Line{Text: match, OrdinalIndex: line.OrdinalIndex},
		Category:   constants.FieldEmail,
		Confidence: emailConfidence,
	}
}

// scorePhone matches a North-American phone shape, substring-scoped like email.
func scorePhone(line Line) *Candidate {
	match := rePhone.FindString(line.Text)
	if match == "" {
		return nil
	}
	return &Candidate{
		Line:       Line{Text: strings.TrimSpace(match), OrdinalIndex: line.OrdinalIndex},
		Category:   constants.FieldPhone,
		Confidence: phoneConfidence,
	}
}

// nameShape is the strict gate for the name scorer. Badge-style all-caps
// lines ("JANE SMITH") are gated against their title-cased form, since the
// capitalized-words pattern cannot match them directly.
func nameShape(text string) (canonical string, ok bool) {
	canonical = text
	if text == strings.ToUpper(text) {
		canonical = titleCase(text)
	}
	return canonical, reNameShape.MatchString(canonical)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// scoreName gates on the capitalized-words shape, then accumulates bonuses
// for position and two-word shape and penalties for company/title vocabulary.
func scoreName(line Line, firstRelevant bool) *Candidate {
	canonical, ok := nameShape(line.Text)
	if !ok {
		return nil
	}

	score := 0.0
	if firstRelevant {
		score += 0.4
	}
	if line.Text == strings.ToUpper(line.Text) && len(line.Text) >= 4 && len(line.Text) <= 30 {
		score += 0.3
	}
	if reTwoWords.MatchString(canonical) {
		score += 0.5
	}
	words := len(strings.Fields(line.Text))
	if words == 2 {
		score += 0.2
	}
	if words > 3 {
		score -= 0.3
	}
	if reLegalSuffix.MatchString(canonical) {
		score -= 0.5
	}
	if reRoleWord.MatchString(canonical) {
		score -= 0.4
	}

	return &Candidate{
		Line:       line,
		Category:   constants.FieldName,
		Confidence: clamp(score),
	}
}

// scoreTitle requires at least one job-title pattern; position and length
// adjustments apply only once a pattern has matched.
func scoreTitle(line Line) *Candidate {
	score := 0.0
	matched := false
	for _, re := range titlePatterns {
		if re.MatchString(line.Text) {
			matched = true
			score += 0.4
		}
	}
	if !matched {
		return nil
	}

	if line.OrdinalIndex >= 1 && line.OrdinalIndex <= 3 {
		score += 0.2
	}
	if len(line.Text) < 50 {
		score += 0.1
	}
	if len(line.Text) > 60 {
		score -= 0.3
	}

	return &Candidate{
		Line:       line,
		Category:   constants.FieldTitle,
		Confidence: clamp(score),
	}
}

// scoreCompany penalizes name/title shapes, rewards legal-entity vocabulary,
// and only emits a candidate above a floor of 0.3.
func scoreCompany(line Line) *Candidate {
	score := 0.0
	if _, ok := nameShape(line.Text); ok {
		score -= 0.5
	}
	for _, re := range titlePatterns {
		if re.MatchString(line.Text) {
			score -= 0.4
			break
		}
	}
	if reCompanyStrong.MatchString(line.Text) {
		score += 0.5
	}
	if reCompanyTech.MatchString(line.Text) {
		score += 0.4
	}
	if reCompanyGroup.MatchString(line.Text) {
		score += 0.3
	}
	if line.OrdinalIndex >= 1 && line.OrdinalIndex <= 3 {
		score += 0.2
	}
	if len(line.Text) > 8 && len(line.Text) < 40 {
		score += 0.1
	}
	if len(line.Text) > 50 {
		score -= 0.2
	}

	if score <= 0.3 {
		return nil
	}
	return &Candidate{
		Line:       line,
		Category:   constants.FieldCompany,
		Confidence: clamp(score),
	}
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > heuristicCap {
		return heuristicCap
	}
	return score
}
