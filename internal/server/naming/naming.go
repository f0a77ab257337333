// Package naming maps (file, device, version) triples to cloud object names.
//
// A name is "<fileId>.<deviceId>.<version>". Both identifiers are UUIDs, which
// never contain the separator, so distinct triples never share a name and
// every name parses back to its triple.
package naming

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const separator = "."

// ObjectID identifies one immutable cloud object.
type ObjectID struct {
	FileID   string
	DeviceID string
	Version  int64
}

// CloudObjectName builds the object name for a file version written by device.
// Identifiers are expected to be validated UUIDs; use New to enforce that.
func CloudObjectName(fileID, deviceID string, version int64) string {
	return fileID + separator + deviceID + separator + strconv.FormatInt(version, 10)
}

// New validates the components and returns the object identifier.
func New(fileID, deviceID string, version int64) (ObjectID, error) {
	if _, err := uuid.Parse(fileID); err != nil {
		return ObjectID{}, fmt.Errorf("file id: %w", err)
	}
	if _, err := uuid.Parse(deviceID); err != nil {
		return ObjectID{}, fmt.Errorf("device id: %w", err)
	}
	if version < 0 {
		return ObjectID{}, fmt.Errorf("negative version %d", version)
	}
	return ObjectID{FileID: fileID, DeviceID: deviceID, Version: version}, nil
}

func (o ObjectID) Name() string {
	return CloudObjectName(o.FileID, o.DeviceID, o.Version)
}

// Key is the object key inside the bucket: the name under the file's cloud folder.
func (o ObjectID) Key(cloudFolderName string) string {
	if cloudFolderName == "" {
		return o.Name()
	}
	return path.Join(cloudFolderName, o.Name())
}

// Parse is the inverse of CloudObjectName.
func Parse(name string) (ObjectID, error) {
	parts := strings.Split(name, separator)
	if len(parts) != 3 {
		return ObjectID{}, fmt.Errorf("malformed object name %q", name)
	}
	version, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return ObjectID{}, fmt.Errorf("malformed version in %q: %w", name, err)
	}
	return New(parts[0], parts[1], version)
}
