package metadata

import (
	"time"

	"github.com/google/uuid"

	"tracd.io/tracd/pkg/pb"
)

// NewObjectId mints a fresh object identity.
func NewObjectId() string {
	return uuid.NewString()
}

// NewObjectHeader builds the header for version 1 of a new object.
func NewObjectHeader(objectType pb.ObjectType, objectId string, now time.Time) *pb.TagHeader {
	ts := EncodeDatetime(now)
	return &pb.TagHeader{
		ObjectType:      objectType,
		ObjectId:        objectId,
		ObjectVersion:   ObjectFirstVersion,
		ObjectTimestamp: ts,
		TagVersion:      TagFirstVersion,
		TagTimestamp:    ts,
	}
}

// NextObjectHeader advances an object to its next version. The tag version
// restarts at 1.
func NextObjectHeader(prior *pb.TagHeader, now time.Time) *pb.TagHeader {
	ts := EncodeDatetime(now)
	return &pb.TagHeader{
		ObjectType:      prior.ObjectType,
		ObjectId:        prior.ObjectId,
		ObjectVersion:   prior.ObjectVersion + 1,
		ObjectTimestamp: ts,
		TagVersion:      TagFirstVersion,
		TagTimestamp:    ts,
	}
}

// NextTagHeader advances the tag version within the current object version.
func NextTagHeader(prior *pb.TagHeader, now time.Time) *pb.TagHeader {
	return &pb.TagHeader{
		ObjectType:      prior.ObjectType,
		ObjectId:        prior.ObjectId,
		ObjectVersion:   prior.ObjectVersion,
		ObjectTimestamp: prior.ObjectTimestamp,
		TagVersion:      prior.TagVersion + 1,
		TagTimestamp:    EncodeDatetime(now),
	}
}

// SelectorFor pins a selector to the exact object and tag version of a header.
func SelectorFor(header *pb.TagHeader) *pb.TagSelector {
	return &pb.TagSelector{
		ObjectType:     header.ObjectType,
		ObjectId:       header.ObjectId,
		ObjectCriteria: &pb.TagSelector_ObjectVersion{ObjectVersion: header.ObjectVersion},
		TagCriteria:    &pb.TagSelector_TagVersion{TagVersion: header.TagVersion},
	}
}

// SelectorForLatest addresses the latest object and tag version of a header's
// object id.
func SelectorForLatest(header *pb.TagHeader) *pb.TagSelector {
	return &pb.TagSelector{
		ObjectType:     header.ObjectType,
		ObjectId:       header.ObjectId,
		ObjectCriteria: &pb.TagSelector_LatestObject{LatestObject: true},
		TagCriteria:    &pb.TagSelector_LatestTag{LatestTag: true},
	}
}

// PriorVersionOf pins a selector to the object version of a header with the
// latest tag, the shape used when loading the prior version during updates.
func PriorVersionOf(selector *pb.TagSelector, version int32) *pb.TagSelector {
	return &pb.TagSelector{
		ObjectType:     selector.ObjectType,
		ObjectId:       selector.ObjectId,
		ObjectCriteria: &pb.TagSelector_ObjectVersion{ObjectVersion: version},
		TagCriteria:    &pb.TagSelector_LatestTag{LatestTag: true},
	}
}
