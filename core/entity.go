package core

// Entity is a session-scoped handle into the world's component stores
type Entity uint64

// NoEntity is the zero handle; never issued by a World
const NoEntity Entity = 0
