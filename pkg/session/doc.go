// Package session serializes access to stored projects.
//
// The stateless remote path is a read-modify-write cycle with no inherent
// locking; the Manager closes the in-process window with ref-counted
// per-project mutexes and can additionally coordinate across replicas
// through an optional distributed locker. Without one, concurrent remote
// mutations of the same project remain document last-write-wins.
package session
