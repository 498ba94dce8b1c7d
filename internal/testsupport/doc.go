// Package testsupport provides shared fixtures for git-ignore tests, chiefly
// an in-memory remote catalog stub that satisfies cachestore.RemoteClient.
package testsupport
