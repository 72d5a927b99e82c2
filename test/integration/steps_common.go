package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"github.com/fieldworks/panelforge/pkg/envfile"
	"github.com/fieldworks/panelforge/pkg/secrets"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc         *TestContext
	dir        string // per-scenario scratch directory
	lastOutput string
	noted      map[string]string
	token      string
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:    tc,
		noted: make(map[string]string),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Scaffolding steps
	sc.Step(`^I create a project "([^"]*)" with database "([^"]*)"$`, s.iCreateProject)
	sc.Step(`^a project "([^"]*)" with database "([^"]*)"$`, s.iCreateProject)
	sc.Step(`^creating a project "([^"]*)" with database "([^"]*)" should fail mentioning "([^"]*)"$`, s.creatingAProjectShouldFail)
	sc.Step(`^the project "([^"]*)" should contain "([^"]*)"$`, s.theProjectShouldContain)
	sc.Step(`^the env entry "([^"]*)" in "([^"]*)" should be "([^"]*)"$`, s.theEnvEntryShouldBe)

	// Secret steps
	sc.Step(`^the secrets in "([^"]*)" should be provisioned$`, s.theSecretsShouldBeProvisioned)
	sc.Step(`^I note the secrets in "([^"]*)"$`, s.iNoteTheSecrets)
	sc.Step(`^I provision the secrets in "([^"]*)"$`, s.iProvisionTheSecrets)
	sc.Step(`^I provision the secrets in "([^"]*)" keeping existing values$`, s.iProvisionTheSecretsKeepingExisting)
	sc.Step(`^the secrets in "([^"]*)" should differ from the noted values$`, s.theSecretsShouldDifferFromNoted)
	sc.Step(`^the secrets in "([^"]*)" should match the noted values$`, s.theSecretsShouldMatchNoted)
	sc.Step(`^the project "([^"]*)" has a custom env line "([^"]*)"$`, s.theProjectHasACustomEnvLine)
	sc.Step(`^the env file in "([^"]*)" should contain the line "([^"]*)"$`, s.theEnvFileShouldContainTheLine)
	sc.Step(`^the project "([^"]*)" has an env file with only "([^"]*)"$`, s.theProjectHasAnEnvFileWithOnly)
	sc.Step(`^provisioning secrets in "([^"]*)" should fail mentioning "([^"]*)"$`, s.provisioningSecretsShouldFail)

	// Route steps
	sc.Step(`^I add a route "([^"]*)" to "([^"]*)"$`, s.iAddARoute)
	sc.Step(`^listing routes in "([^"]*)" should mention "([^"]*)" "([^"]*)"$`, s.listingRoutesShouldMention)
	sc.Step(`^verifying the routes doc in "([^"]*)" should succeed$`, s.verifyingTheRoutesDocShouldSucceed)

	// Token steps
	sc.Step(`^I sign a token for "([^"]*)" in "([^"]*)"$`, s.iSignATokenFor)
	sc.Step(`^verifying the token in "([^"]*)" should report subject "([^"]*)"$`, s.verifyingTheTokenShouldReportSubject)
	sc.Step(`^verifying the token in "([^"]*)" should fail$`, s.verifyingTheTokenShouldFail)

	// Database steps
	sc.Step(`^the project "([^"]*)" uses the test database$`, s.theProjectUsesTheTestDatabase)
	sc.Step(`^I run migrations for "([^"]*)"$`, s.iRunMigrationsFor)
	sc.Step(`^running migrations for "([^"]*)" should fail mentioning "([^"]*)"$`, s.runningMigrationsShouldFail)
	sc.Step(`^I seed an admin user "([^"]*)" with password "([^"]*)" in "([^"]*)"$`, s.iSeedAnAdminUser)
	sc.Step(`^the database should contain user "([^"]*)"$`, s.theDatabaseShouldContainUser)
	sc.Step(`^the stored password for "([^"]*)" should verify against "([^"]*)"$`, s.theStoredPasswordShouldVerify)
	sc.Step(`^the migration status for "([^"]*)" should report a clean version$`, s.theMigrationStatusShouldReportACleanVersion)
}

// scenarioDir lazily creates the scratch directory scaffolded projects
// live in. Each scenario gets its own so project names can repeat
// across scenarios.
func (s *StepsContext) scenarioDir() (string, error) {
	if s.dir == "" {
		dir, err := os.MkdirTemp(s.tc.WorkDir, "scenario-")
		if err != nil {
			return "", fmt.Errorf("failed to create scenario directory: %w", err)
		}
		s.dir = dir
	}
	return s.dir, nil
}

func (s *StepsContext) envPath(project string) string {
	return filepath.Join(s.dir, project, ".env")
}

// Scaffolding steps

func (s *StepsContext) iCreateProject(name, database string) error {
	dir, err := s.scenarioDir()
	if err != nil {
		return err
	}

	out, err := s.tc.RunPanelctl(dir, nil, "new", name, "--database", database, "--non-interactive", "--skip-install")
	s.lastOutput = out
	if err != nil {
		return fmt.Errorf("panelctl new failed: %w\n%s", err, out)
	}
	return nil
}

func (s *StepsContext) creatingAProjectShouldFail(name, database, fragment string) error {
	dir, err := s.scenarioDir()
	if err != nil {
		return err
	}

	out, err := s.tc.RunPanelctl(dir, nil, "new", name, "--database", database, "--non-interactive", "--skip-install")
	s.lastOutput = out
	if err == nil {
		return fmt.Errorf("expected panelctl new to fail, output:\n%s", out)
	}
	if !strings.Contains(out, fragment) {
		return fmt.Errorf("expected output to mention %q, got:\n%s", fragment, out)
	}
	return nil
}

func (s *StepsContext) theProjectShouldContain(name, relPath string) error {
	path := filepath.Join(s.dir, name, relPath)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("expected %s to exist: %w", path, err)
	}
	return nil
}

func (s *StepsContext) theEnvEntryShouldBe(key, project, expected string) error {
	doc, err := envfile.Load(s.envPath(project))
	if err != nil {
		return err
	}

	value, ok := doc.Get(key)
	if !ok {
		return fmt.Errorf("%s has no entry for %s", project, key)
	}
	if value != expected {
		return fmt.Errorf("expected %s=%s, got %s=%s", key, expected, key, value)
	}
	return nil
}

// Secret steps

func (s *StepsContext) theSecretsShouldBeProvisioned(project string) error {
	doc, err := envfile.Load(s.envPath(project))
	if err != nil {
		return err
	}

	values := make(map[string]string, len(secrets.DefaultKeys))
	for _, key := range secrets.DefaultKeys {
		value, ok := doc.Get(key)
		if !ok {
			return fmt.Errorf("%s has no entry for %s", project, key)
		}
		if !secrets.Valid(value) {
			return fmt.Errorf("%s in %s is not a 64-character hex secret", key, project)
		}
		values[key] = value
	}

	// Each key gets its own randomness
	if values["JWT_SECRET"] == values["CSRF_SECRET"] {
		return fmt.Errorf("JWT_SECRET and CSRF_SECRET in %s hold the same value", project)
	}
	return nil
}

func (s *StepsContext) iNoteTheSecrets(project string) error {
	doc, err := envfile.Load(s.envPath(project))
	if err != nil {
		return err
	}

	for _, key := range secrets.DefaultKeys {
		value, ok := doc.Get(key)
		if !ok {
			return fmt.Errorf("%s has no entry for %s", project, key)
		}
		s.noted[key] = value
	}
	return nil
}

func (s *StepsContext) iProvisionTheSecrets(project string) error {
	out, err := s.tc.RunPanelctl(s.dir, nil, "secrets", "provision", "--dir", project)
	s.lastOutput = out
	if err != nil {
		return fmt.Errorf("panelctl secrets provision failed: %w\n%s", err, out)
	}
	return nil
}

func (s *StepsContext) iProvisionTheSecretsKeepingExisting(project string) error {
	out, err := s.tc.RunPanelctl(s.dir, nil, "secrets", "provision", "--dir", project, "--keep-existing")
	s.lastOutput = out
	if err != nil {
		return fmt.Errorf("panelctl secrets provision failed: %w\n%s", err, out)
	}
	return nil
}

func (s *StepsContext) theSecretsShouldDifferFromNoted(project string) error {
	doc, err := envfile.Load(s.envPath(project))
	if err != nil {
		return err
	}

	for _, key := range secrets.DefaultKeys {
		value, _ := doc.Get(key)
		if value == s.noted[key] {
			return fmt.Errorf("%s in %s was not rotated", key, project)
		}
	}
	return nil
}

func (s *StepsContext) theSecretsShouldMatchNoted(project string) error {
	doc, err := envfile.Load(s.envPath(project))
	if err != nil {
		return err
	}

	for _, key := range secrets.DefaultKeys {
		value, _ := doc.Get(key)
		if value != s.noted[key] {
			return fmt.Errorf("%s in %s changed but should have been kept", key, project)
		}
	}
	return nil
}

func (s *StepsContext) theProjectHasACustomEnvLine(project, line string) error {
	f, err := os.OpenFile(s.envPath(project), os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = f.WriteString(line + "\n")
	return err
}

func (s *StepsContext) theEnvFileShouldContainTheLine(project, line string) error {
	data, err := os.ReadFile(s.envPath(project))
	if err != nil {
		return err
	}

	for _, got := range strings.Split(string(data), "\n") {
		if got == line {
			return nil
		}
	}
	return fmt.Errorf("env file in %s does not contain the line %q:\n%s", project, line, data)
}

func (s *StepsContext) theProjectHasAnEnvFileWithOnly(project, key string) error {
	return os.WriteFile(s.envPath(project), []byte(key+"=\n"), 0600)
}

func (s *StepsContext) provisioningSecretsShouldFail(project, fragment string) error {
	out, err := s.tc.RunPanelctl(s.dir, nil, "secrets", "provision", "--dir", project)
	s.lastOutput = out
	if err == nil {
		return fmt.Errorf("expected panelctl secrets provision to fail, output:\n%s", out)
	}
	if !strings.Contains(out, fragment) {
		return fmt.Errorf("expected output to mention %q, got:\n%s", fragment, out)
	}
	return nil
}

// Route steps

func (s *StepsContext) iAddARoute(route, project string) error {
	out, err := s.tc.RunPanelctl(s.dir, nil, "add", "route", route, "--dir", project)
	s.lastOutput = out
	if err != nil {
		return fmt.Errorf("panelctl add route failed: %w\n%s", err, out)
	}
	return nil
}

func (s *StepsContext) listingRoutesShouldMention(project, method, path string) error {
	out, err := s.tc.RunPanelctl(s.dir, nil, "routes", "list", "--dir", project)
	s.lastOutput = out
	if err != nil {
		return fmt.Errorf("panelctl routes list failed: %w\n%s", err, out)
	}
	if !strings.Contains(out, method) || !strings.Contains(out, path) {
		return fmt.Errorf("expected listing to mention %s %s, got:\n%s", method, path, out)
	}
	return nil
}

func (s *StepsContext) verifyingTheRoutesDocShouldSucceed(project string) error {
	out, err := s.tc.RunPanelctl(s.dir, nil, "routes", "verify", "--dir", project)
	s.lastOutput = out
	if err != nil {
		return fmt.Errorf("panelctl routes verify failed: %w\n%s", err, out)
	}
	return nil
}

// Token steps

func (s *StepsContext) iSignATokenFor(subject, project string) error {
	out, err := s.tc.RunPanelctl(s.dir, nil, "token", "sign", "--dir", project, "--sub", subject)
	if err != nil {
		return fmt.Errorf("panelctl token sign failed: %w\n%s", err, out)
	}
	s.token = strings.TrimSpace(out)
	if s.token == "" {
		return fmt.Errorf("token sign printed nothing")
	}
	return nil
}

func (s *StepsContext) verifyingTheTokenShouldReportSubject(project, subject string) error {
	out, err := s.tc.RunPanelctl(s.dir, nil, "token", "verify", s.token, "--dir", project)
	s.lastOutput = out
	if err != nil {
		return fmt.Errorf("panelctl token verify failed: %w\n%s", err, out)
	}
	if !strings.Contains(out, "Subject: "+subject) {
		return fmt.Errorf("expected verify output to report subject %s, got:\n%s", subject, out)
	}
	return nil
}

func (s *StepsContext) verifyingTheTokenShouldFail(project string) error {
	out, err := s.tc.RunPanelctl(s.dir, nil, "token", "verify", s.token, "--dir", project)
	s.lastOutput = out
	if err == nil {
		return fmt.Errorf("expected panelctl token verify to fail, output:\n%s", out)
	}
	return nil
}
