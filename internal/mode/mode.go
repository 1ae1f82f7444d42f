// Package mode models the execution context a command runs in: inside a
// project (a directory holding icp.yaml) or globally with no project at all.
package mode

import (
	"os"
	"path/filepath"

	"github.com/rileyhilliard/icp/internal/errors"
)

// ProjectFileName marks the root of a project.
const ProjectFileName = "icp.yaml"

// Kind is the execution context variant.
type Kind int

const (
	// Global means no project was found.
	Global Kind = iota
	// Project means a project directory was located.
	Project
)

func (k Kind) String() string {
	switch k {
	case Project:
		return "project"
	case Global:
		return "global"
	default:
		return "unknown"
	}
}

// Mode is the resolved execution context. It is comparable: two global
// modes are equal, two project modes are equal iff their directories are.
type Mode struct {
	kind Kind
	dir  string
}

// NewProject returns a project mode rooted at dir.
func NewProject(dir string) Mode {
	return Mode{kind: Project, dir: dir}
}

// NewGlobal returns the global mode.
func NewGlobal() Mode {
	return Mode{kind: Global}
}

func (m Mode) Kind() Kind        { return m.kind }
func (m Mode) IsProject() bool   { return m.kind == Project }
func (m Mode) IsGlobal() bool    { return m.kind == Global }
func (m Mode) Equal(o Mode) bool { return m == o }

// Dir returns the project directory, empty in global mode.
func (m Mode) Dir() string { return m.dir }

// ConfigPath returns the project file path, empty in global mode.
func (m Mode) ConfigPath() string {
	if m.kind != Project {
		return ""
	}
	return filepath.Join(m.dir, ProjectFileName)
}

func (m Mode) String() string {
	if m.kind == Project {
		return "project(" + m.dir + ")"
	}
	return "global"
}

// Locate walks up from start looking for icp.yaml. It stops at the
// filesystem root and does not search above the user's home directory.
// Not finding a project is not an error: the result is the global mode.
func Locate(start string) (Mode, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return Mode{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Can't resolve project directory: "+start,
			"Check the path passed to --project-dir")
	}

	home, _ := os.UserHomeDir()
	for {
		candidate := filepath.Join(dir, ProjectFileName)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return NewProject(dir), nil
		case err != nil && !os.IsNotExist(err):
			return Mode{}, errors.WrapWithCode(err, errors.ErrConfig,
				"Can't access "+candidate,
				"Check file permissions")
		}

		if home != "" && dir == home {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return NewGlobal(), nil
}

// LocateFromWd runs Locate from the current working directory.
func LocateFromWd() (Mode, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Mode{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Can't determine current directory",
			"Check your directory permissions.")
	}
	return Locate(cwd)
}
