package indicators

import (
	"regexp"
	"strings"

	"github.com/miekg/dns"
)

// Kind is a coarse label for an opaque (non-IP) indicator.
type Kind string

const (
	KindDomain Kind = "domain"
	KindURL    Kind = "url"
	KindEmail  Kind = "email"
	KindMD5    Kind = "md5"
	KindSHA1   Kind = "sha1"
	KindSHA256 Kind = "sha256"
	KindOther  Kind = "other"
)

var (
	hexRegexp       = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	hostCharsRegexp = regexp.MustCompile(`^[A-Za-z0-9_*.-]+$`)
	numericTLD      = regexp.MustCompile(`^[0-9]+$`)
)

// KindOf labels an opaque token. It is used for summaries only and never
// influences how tokens are compared.
func KindOf(token string) Kind {
	token = strings.TrimSpace(token)

	switch {
	case token == "":
		return KindOther
	case strings.Contains(token, "://"):
		return KindURL
	case hexRegexp.MatchString(token):
		switch len(token) {
		case 32:
			return KindMD5
		case 40:
			return KindSHA1
		case 64:
			return KindSHA256
		}
		return KindOther
	}

	if at := strings.LastIndexByte(token, '@'); at > 0 {
		if isDomainName(token[at+1:]) {
			return KindEmail
		}
		return KindOther
	}

	if isDomainName(token) {
		return KindDomain
	}
	return KindOther
}

func isDomainName(name string) bool {
	name = strings.TrimSuffix(name, ".")
	if !strings.Contains(name, ".") || !hostCharsRegexp.MatchString(name) {
		return false
	}
	labels, ok := dns.IsDomainName(name)
	if !ok || labels < 2 {
		return false
	}
	tld := name[strings.LastIndexByte(name, '.')+1:]
	return tld != "" && !numericTLD.MatchString(tld)
}
