// Package toolchain locates and runs the Node tooling a scaffolded
// panel depends on.
//
// Library code never shells out directly. Everything goes through a
// Runner so commands can be stubbed in tests and external tools stay
// collaborators rather than hard dependencies.
package toolchain
