package reconcile

import (
	"fmt"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
)

const (
	reportHeader = "The following packages have been updated:\n\n"
	nullVersion  = "null"
)

// Report renders the change summary posted to the pull request.
// Only platforms with at least one change get a block. No changes renders "".
func Report(changes []domain.ChangeRecord, platforms []string, relockAll bool, manifestPath string) string {
	if len(changes) == 0 {
		return ""
	}

	byPlatform := make(map[string][]domain.ChangeRecord, len(platforms))
	for _, c := range changes {
		byPlatform[c.Platform] = append(byPlatform[c.Platform], c)
	}

	var b strings.Builder
	b.WriteString(reportHeader)
	for _, platform := range platforms {
		records := byPlatform[platform]
		if len(records) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  * platform: %s\n", platform)
		for _, c := range records {
			fmt.Fprintf(&b, "      - %s: %s -> %s\n", c.Name, versionText(c.Old), versionText(c.New))
		}
		b.WriteString("\n")
	}

	if relockAll {
		fmt.Fprintf(&b,
			"Note: All package updates, even those not to a dependency listed in your '%s' file, "+
				"are listed above because you requested that all packages be relocked.\n",
			manifestPath)
	}
	return b.String()
}

func versionText(v *string) string {
	if v == nil {
		return nullVersion
	}
	return *v
}
