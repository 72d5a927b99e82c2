package project

//go:generate go run github.com/dmarkham/enumer -type PackageManager -trimprefix PackageManager -transform lower -yaml -output packagemanager.gen.go

type PackageManager int

const (
	PackageManagerNpm PackageManager = iota
	PackageManagerPnpm
	PackageManagerYarn
)

// InstallArgs returns the command line that installs a scaffolded
// project's dependencies with this package manager.
func (p PackageManager) InstallArgs() []string {
	switch p {
	case PackageManagerPnpm:
		return []string{"pnpm", "install"}
	case PackageManagerYarn:
		return []string{"yarn"}
	default:
		return []string{"npm", "install"}
	}
}

// RunPrefix returns the command line prefix that runs a package.json
// script with this package manager.
func (p PackageManager) RunPrefix() []string {
	switch p {
	case PackageManagerPnpm:
		return []string{"pnpm", "run"}
	case PackageManagerYarn:
		return []string{"yarn"}
	default:
		return []string{"npm", "run"}
	}
}
