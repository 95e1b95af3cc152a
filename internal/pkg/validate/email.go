package validate

import (
	"regexp"
	"strings"

	"flashbooth/internal/pkg/errs"
)

var (
	ErrEmailRequired     = errs.New("email is required")
	ErrEmailFormat       = errs.New("email format is invalid")
	ErrEmailSuspicious   = errs.New("email address looks fake")
	ErrEmailDomain       = errs.New("email domain is not recognized")
	ErrEmailLocalPart    = errs.New("email local part is invalid")
	ErrEmailDomainLength = errs.New("email domain is invalid")
)

var basicEmailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email checks the basic local@domain.tld shape used on the public booking form.
func Email(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return ErrEmailRequired
	}
	if !basicEmailRe.MatchString(trimmed) {
		return ErrEmailFormat
	}
	return nil
}

// allowedEmailDomains is the consumer-provider allowlist used by the strict
// validator. Domains outside the list fall through to TLD heuristics.
var allowedEmailDomains = map[string]struct{}{
	"gmail.com": {}, "outlook.fr": {}, "outlook.com": {}, "live.fr": {},
	"live.com": {}, "hotmail.fr": {}, "hotmail.com": {}, "yahoo.fr": {},
	"yahoo.com": {}, "orange.fr": {}, "wanadoo.fr": {}, "free.fr": {},
	"sfr.fr": {}, "laposte.net": {}, "icloud.com": {}, "me.com": {},
	"mac.com": {}, "protonmail.com": {}, "proton.me": {}, "aol.com": {},
	"aol.fr": {}, "gmx.fr": {}, "gmx.com": {}, "msn.com": {},
	"bouygtel.fr": {}, "bbox.fr": {}, "club-internet.fr": {},
	"numericable.fr": {}, "neuf.fr": {}, "aliceadsl.fr": {},
	"cegetel.net": {}, "tele2.fr": {}, "mail.com": {}, "yandex.com": {},
	"zoho.com": {},
}

var blockedEmailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^[a-z]{2,4}@[a-z]{5,15}\.(fr|com)$`),
	regexp.MustCompile(`(?i)test@test\.`),
	regexp.MustCompile(`(?i)admin@admin\.`),
	regexp.MustCompile(`(?i)example@example\.`),
	regexp.MustCompile(`(?i)fake@fake\.`),
	regexp.MustCompile(`(?i)demo@demo\.`),
}

var suspiciousDomainPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^[a-z]{2,3}$`),
	regexp.MustCompile(`(?i)^test`),
	regexp.MustCompile(`(?i)^fake`),
	regexp.MustCompile(`(?i)^demo`),
	regexp.MustCompile(`(?i)^example`),
	regexp.MustCompile(`^\d+$`),
}

var validTLDs = map[string]struct{}{
	"com": {}, "fr": {}, "org": {}, "net": {}, "eu": {}, "be": {}, "ch": {},
	"de": {}, "es": {}, "it": {}, "uk": {}, "ca": {}, "us": {},
}

// StrictEmail applies the consumer-domain allowlist plus fake-pattern denylist.
// Used for contact messages and staff accounts, not the public booking step.
func StrictEmail(email string) error {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return ErrEmailRequired
	}
	if !basicEmailRe.MatchString(trimmed) {
		return ErrEmailFormat
	}

	for _, p := range blockedEmailPatterns {
		if p.MatchString(trimmed) {
			return ErrEmailSuspicious
		}
	}

	parts := strings.Split(trimmed, "@")
	if len(parts) != 2 {
		return ErrEmailFormat
	}
	local, domain := parts[0], parts[1]

	if len(local) == 0 || len(local) > 64 {
		return ErrEmailLocalPart
	}
	if len(domain) == 0 || len(domain) > 255 {
		return ErrEmailDomainLength
	}

	if _, ok := allowedEmailDomains[domain]; ok {
		return nil
	}

	domainParts := strings.Split(domain, ".")
	if len(domainParts) < 2 {
		return ErrEmailDomainLength
	}

	tld := domainParts[len(domainParts)-1]
	if _, ok := validTLDs[tld]; !ok {
		return ErrEmailDomain
	}

	mainDomain := domainParts[len(domainParts)-2]
	if len(mainDomain) < 2 {
		return ErrEmailDomainLength
	}
	if len(domainParts) == 2 && len(mainDomain) < 4 {
		return ErrEmailDomain
	}

	for _, p := range suspiciousDomainPatterns {
		if p.MatchString(mainDomain) {
			return ErrEmailSuspicious
		}
	}

	return nil
}
