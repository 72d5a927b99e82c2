package integration

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/fieldworks/panelforge/pkg/envfile"
)

// Database steps drive `panelctl db` against the postgres testcontainer
// and assert on the resulting rows directly.

func (s *StepsContext) theProjectUsesTheTestDatabase(project string) error {
	path := s.envPath(project)
	doc, err := envfile.Load(path)
	if err != nil {
		return err
	}

	if err := doc.Set("DATABASE_URL", `"`+s.tc.DatabaseURL+`"`); err != nil {
		return err
	}
	return doc.Save(path)
}

func (s *StepsContext) iRunMigrationsFor(project string) error {
	out, err := s.tc.RunPanelctl(s.dir, nil, "db", "migrate", "--dir", project)
	s.lastOutput = out
	if err != nil {
		return fmt.Errorf("panelctl db migrate failed: %w\n%s", err, out)
	}
	return nil
}

func (s *StepsContext) runningMigrationsShouldFail(project, fragment string) error {
	out, err := s.tc.RunPanelctl(s.dir, nil, "db", "migrate", "--dir", project)
	s.lastOutput = out
	if err == nil {
		return fmt.Errorf("expected panelctl db migrate to fail, output:\n%s", out)
	}
	if !strings.Contains(out, fragment) {
		return fmt.Errorf("expected output to mention %q, got:\n%s", fragment, out)
	}
	return nil
}

func (s *StepsContext) iSeedAnAdminUser(email, password, project string) error {
	out, err := s.tc.RunPanelctl(s.dir, nil, "db", "seed", "--dir", project, "--email", email, "--password", password)
	s.lastOutput = out
	if err != nil {
		return fmt.Errorf("panelctl db seed failed: %w\n%s", err, out)
	}
	return nil
}

func (s *StepsContext) theDatabaseShouldContainUser(email string) error {
	var count int64
	if err := s.tc.DB.Raw(`SELECT COUNT(*) FROM "User" WHERE email = ?`, email).Scan(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("user %s does not exist", email)
	}
	return nil
}

func (s *StepsContext) theStoredPasswordShouldVerify(email, password string) error {
	var hash string
	if err := s.tc.DB.Raw(`SELECT "passwordHash" FROM "User" WHERE email = ?`, email).Scan(&hash).Error; err != nil {
		return err
	}
	if hash == "" {
		return fmt.Errorf("user %s has no stored password", email)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("stored password for %s does not verify: %w", email, err)
	}
	return nil
}

func (s *StepsContext) theMigrationStatusShouldReportACleanVersion(project string) error {
	out, err := s.tc.RunPanelctl(s.dir, nil, "db", "status", "--dir", project)
	s.lastOutput = out
	if err != nil {
		return fmt.Errorf("panelctl db status failed: %w\n%s", err, out)
	}
	if !strings.Contains(out, "Current version:") {
		return fmt.Errorf("expected a current version, got:\n%s", out)
	}
	if strings.Contains(out, "dirty") {
		return fmt.Errorf("database is dirty:\n%s", out)
	}
	return nil
}
