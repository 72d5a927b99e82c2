package toolchain

import (
	"fmt"
)

// SchemaTool drives Prisma for a generated project: client generation
// and pushing the schema into the recipe's database.
type SchemaTool struct {
	Runner Runner

	// Tool is the executable that fronts Prisma. npx when empty.
	Tool string
}

func (s SchemaTool) tool() string {
	if s.Tool == "" {
		return "npx"
	}
	return s.Tool
}

// Generate produces the Prisma client from the project's schema.
func (s SchemaTool) Generate(dir string) error {
	if err := s.Runner.Run(dir, s.tool(), "prisma", "generate"); err != nil {
		return fmt.Errorf("prisma generate failed: %w", err)
	}

	return nil
}

// Push applies the project's schema to its configured database.
func (s SchemaTool) Push(dir string) error {
	if err := s.Runner.Run(dir, s.tool(), "prisma", "db", "push"); err != nil {
		return fmt.Errorf("prisma db push failed: %w", err)
	}

	return nil
}
