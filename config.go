package nbt

// DefaultBigEndian controls the byte order used by New and by Load calls
// that don't specify WithLittleEndian/WithBigEndian explicitly. Save keeps
// the byte order the File was created or loaded with and does not consult
// it. The Java edition of NBT is big-endian; Bedrock-style variants are
// little-endian. Tests may override this process-wide default.
var DefaultBigEndian = true

// DefaultIndent is the per-level indentation Pretty uses when no other
// indent has been configured.
var DefaultIndent = "  "
