// Package lodestar answers three coupled questions for any process that
// imports it: what workspace am I part of, which package within it am I, and
// what runtime configuration applies here. The answers are computed once,
// sealed into a process-wide Environment, and exposed through Get/Set and a
// set of field accessors.
//
// Typical use at program startup:
//
//	env := lodestar.Init(buildName, buildVersion, buildDesc)
//	log.Printf("starting %s", env.Summary())
//
// where the three strings are injected at build time with -ldflags -X.
// Libraries that must not touch the filesystem use LibraryEnv instead.
package lodestar
