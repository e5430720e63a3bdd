package device

import (
	"fmt"
	"strings"

	"github.com/bnema/droidctl/internal/logger"
)

// ResolutionStatus is the outcome of looking an app up by name.
type ResolutionStatus int

const (
	// ResolutionNone means nothing matched at all.
	ResolutionNone ResolutionStatus = iota
	// ResolutionUnique means exactly one app matched and Intent is set.
	ResolutionUnique
	// ResolutionAmbiguous means candidates exist but none could be chosen.
	ResolutionAmbiguous
)

func (s ResolutionStatus) String() string {
	switch s {
	case ResolutionUnique:
		return "unique"
	case ResolutionAmbiguous:
		return "ambiguous"
	default:
		return "none"
	}
}

// Resolution is the result of an app lookup. Exact and Potential list the
// candidates seen so the caller can present them.
type Resolution struct {
	Status    ResolutionStatus
	Intent    Intent
	Exact     []App
	Potential []App
}

// Unique returns the launch intent when the lookup found exactly one app.
func (r Resolution) Unique() (Intent, bool) {
	return r.Intent, r.Status == ResolutionUnique
}

// Candidates returns exact matches followed by potential ones.
func (r Resolution) Candidates() []App {
	out := make([]App, 0, len(r.Exact)+len(r.Potential))
	out = append(out, r.Exact...)
	return append(out, r.Potential...)
}

// AppWithUniqueLabel finds the app whose label equals label, ignoring case.
// Labels that merely contain the query are reported as potential matches.
// Several exact matches are never tie-broken.
func AppWithUniqueLabel(apps []App, label string) Resolution {
	query := strings.ToLower(label)

	var res Resolution
	for _, app := range apps {
		name := strings.ToLower(app.Label)
		if name == query {
			res.Exact = append(res.Exact, app)
		} else if strings.Contains(name, query) {
			res.Potential = append(res.Potential, app)
		}
	}

	if len(res.Exact) == 1 {
		res.Status = ResolutionUnique
		res.Intent = res.Exact[0].LaunchIntent()
		return res
	}

	if len(res.Exact) == 0 && len(res.Potential) == 0 {
		res.Status = ResolutionNone
		return res
	}

	res.Status = ResolutionAmbiguous
	var suggestions strings.Builder
	if len(res.Exact) > 0 {
		suggestions.WriteString(buildAppListMessage(fmt.Sprintf("Found %d exact matches:", len(res.Exact)), res.Exact))
		suggestions.WriteString("\n")
	}
	if len(res.Potential) > 0 {
		suggestions.WriteString(buildAppListMessage(potentialHeader(len(res.Potential)), res.Potential))
		suggestions.WriteString("\n")
	}
	logger.Errorf("No unique app found named %q\n%s", label, suggestions.String())
	return res
}

// AppGivenPackageName returns the first app whose package equals pkg,
// ignoring case. Without an exact match, packages containing pkg are
// reported but none is chosen.
func AppGivenPackageName(apps []App, pkg string) Resolution {
	query := strings.ToLower(pkg)

	var res Resolution
	for _, app := range apps {
		name := strings.ToLower(app.PackageName)
		if name == query {
			return Resolution{
				Status: ResolutionUnique,
				Intent: app.LaunchIntent(),
				Exact:  []App{app},
			}
		}
		if strings.Contains(name, query) {
			res.Potential = append(res.Potential, app)
		}
	}

	if len(res.Potential) == 0 {
		logger.Errorf("No app found with package name %q", query)
		res.Status = ResolutionNone
		return res
	}

	logger.Errorf("No app found with package name %q\n%s", query,
		buildAppListMessage(potentialHeader(len(res.Potential)), res.Potential))
	res.Status = ResolutionAmbiguous
	return res
}

// Label returns the label of the first app whose package is pkg.
func Label(apps []App, pkg string) (string, bool) {
	for _, app := range apps {
		if app.PackageName == pkg {
			return app.Label, true
		}
	}
	return "", false
}

func potentialHeader(n int) string {
	if n == 1 {
		return "Found 1 potential match:"
	}
	return fmt.Sprintf("Found %d potential matches:", n)
}

func buildAppListMessage(title string, apps []App) string {
	var b strings.Builder
	b.WriteString(title)
	for _, app := range apps {
		fmt.Fprintf(&b, "\n    - %s [%s]", app.Label, app.PackageName)
	}
	return b.String()
}
