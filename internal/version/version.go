package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Заполняются через -ldflags "-X cognitive-targeting/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// buildEpoch - день, от которого считается номер сборки
var buildEpoch = time.Date(2025, time.December, 4, 0, 0, 0, 0, time.UTC)

// VersionInfo describes the build metadata in structured form.
type VersionInfo struct {
	BuildID   int
	BuildDate string
	Commit    string
	Branch    string
	GoVersion string
	Modified  bool // Сборка из грязного дерева
	Error     string
}

// CalculateBuildID - номер сборки: дни от buildEpoch до BuildDate
func CalculateBuildID() (int, error) {
	return buildIDFor(BuildDate)
}

func buildIDFor(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", date)
	}

	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Info собирает метаданные: ldflags, а если их нет - то, что записал go build (vcs.*).
func Info() VersionInfo {
	info := VersionInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	id, err := buildIDFor(info.BuildDate)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID = id
	return info
}

// String - строка для лога при старте
func String() string {
	info := Info()

	commit := coalesce(shortCommit(info.Commit), "unknown")
	if info.Modified {
		commit += "+dirty"
	}

	if info.Error != "" {
		return fmt.Sprintf("zapsim dev commit[%s] go[%s]", commit, coalesce(info.GoVersion, "unknown"))
	}
	return fmt.Sprintf(
		"zapsim build %d (%s) commit[%s] branch[%s] go[%s]",
		info.BuildID,
		info.BuildDate,
		commit,
		coalesce(info.Branch, "unknown"),
		coalesce(info.GoVersion, "unknown"),
	)
}

func shortCommit(c string) string {
	if len(c) > 12 {
		return c[:12]
	}
	return c
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
