// Package signup is a small HTTP backend that accepts completed
// registrations from the wizard.
//
// POST /registrations takes the registration record as JSON and answers with
// the envelope {"data": {"success": true, "message": "...", "id": "..."}}.
// Usernames are unique (case-insensitive); a taken username yields 409
// "username_taken". Requests carrying an Idempotency-Key that was already
// accepted replay the original receipt with 200 instead of creating a
// duplicate. Passwords are stored as bcrypt hashes only.
//
// GET /healthz answers READY while the store is reachable.
//
// Field validation is the wizard's job and is not repeated here.
package signup
