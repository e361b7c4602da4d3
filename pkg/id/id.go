package id

import (
	"crypto/md5"
	"io"
	"strings"

	"github.com/gofrs/uuid"
)

var namespace = uuid.NewV5(uuid.NamespaceURL, "blend")

// GenUUIDString new random uuid
func GenUUIDString() string {
	return uuid.Must(uuid.NewV4()).String()
}

// FromName deterministic uuid of the joined parts
func FromName(parts ...string) string {
	return uuid.NewV5(namespace, strings.Join(parts, ":")).String()
}

// UUIDFromString  new uuid string from string
func UUIDFromString(text string) string {
	h := md5.New()
	_, _ = io.WriteString(h, text)
	sum := h.Sum(nil)
	sum[6] = (sum[6] & 0x0f) | 0x30
	sum[8] = (sum[8] & 0x3f) | 0x80
	return uuid.FromBytesOrNil(sum).String()
}
