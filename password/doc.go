// Package password implements salted Argon2id hashing for lock credentials.
//
// # Output format
//
// Hashes are encoded in PHC string format:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
//
// [Argon2] satisfies the combolock Validator capability through Seal and
// Matches, so a lock keyed through it stores only the PHC string.
// [Argon2.NeedsUpgrade] reports hashes produced with weaker parameters.
//
// # What this package must NOT do
//
//   - Store or retrieve credentials; callers supply plaintext and receive hashes.
//   - Import any other combolock package.
//   - Log plaintext credentials or hash parameters at runtime.
package password
