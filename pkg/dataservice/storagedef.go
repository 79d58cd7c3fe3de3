package dataservice

import (
	"time"

	"tracd.io/tracd/pkg/metadata"
	"tracd.io/tracd/pkg/pb"
)

// expungeTimeout bounds the detached cleanup after a failed second commit.
const expungeTimeout = 30 * time.Second

// newStorageItem builds the storage entry for a freshly written data item:
// one available incarnation holding one available copy.
func newStorageItem(storageKey, storagePath, storageFormat string, now time.Time) *pb.StorageItem {
	ts := metadata.EncodeDatetime(now)
	return &pb.StorageItem{
		Incarnations: []*pb.StorageIncarnation{{
			IncarnationIndex:     0,
			IncarnationTimestamp: ts,
			IncarnationStatus:    pb.IncarnationStatus_INCARNATION_AVAILABLE,
			Copies: []*pb.StorageCopy{{
				StorageKey:    storageKey,
				StoragePath:   storagePath,
				StorageFormat: storageFormat,
				CopyStatus:    pb.CopyStatus_COPY_AVAILABLE,
				CopyTimestamp: ts,
			}},
		}},
	}
}

// storageDefWith builds a STORAGE definition holding a single data item.
func storageDefWith(dataItem string, item *pb.StorageItem) *pb.ObjectDefinition {
	return &pb.ObjectDefinition{
		ObjectType: pb.ObjectType_STORAGE,
		Definition: &pb.ObjectDefinition_Storage{Storage: &pb.StorageDefinition{
			DataItems: map[string]*pb.StorageItem{dataItem: item},
		}},
	}
}

// appendStorageItem adds a data item entry to an existing STORAGE
// definition, the shape of an update writing a new object version. When the
// item already exists the new copy lands as a fresh incarnation, which keeps
// racing writers from clobbering each other's entries.
func appendStorageItem(def *pb.StorageDefinition, dataItem string, item *pb.StorageItem) {
	if def.DataItems == nil {
		def.DataItems = map[string]*pb.StorageItem{}
	}
	existing, ok := def.DataItems[dataItem]
	if !ok {
		def.DataItems[dataItem] = item
		return
	}
	next := item.Incarnations[0]
	next.IncarnationIndex = int32(len(existing.Incarnations))
	existing.Incarnations = append(existing.Incarnations, next)
}

// availableCopy picks the first available copy of the first available
// incarnation for a data item.
func availableCopy(def *pb.StorageDefinition, dataItem string) (*pb.StorageCopy, bool) {
	item, ok := def.GetDataItems()[dataItem]
	if !ok {
		return nil, false
	}
	for _, incarnation := range item.Incarnations {
		if incarnation.IncarnationStatus != pb.IncarnationStatus_INCARNATION_AVAILABLE {
			continue
		}
		for _, copy := range incarnation.Copies {
			if copy.CopyStatus == pb.CopyStatus_COPY_AVAILABLE {
				return copy, true
			}
		}
	}
	return nil, false
}

// markExpunged flags the copies of a data item at storagePath EXPUNGED,
// every copy when storagePath is empty. An incarnation with no available
// copies left is expunged with them.
func markExpunged(def *pb.StorageDefinition, dataItem, storagePath string) {
	item, ok := def.GetDataItems()[dataItem]
	if !ok {
		return
	}
	for _, incarnation := range item.Incarnations {
		remaining := false
		for _, copy := range incarnation.Copies {
			if storagePath == "" || copy.StoragePath == storagePath {
				copy.CopyStatus = pb.CopyStatus_COPY_EXPUNGED
			}
			if copy.CopyStatus == pb.CopyStatus_COPY_AVAILABLE {
				remaining = true
			}
		}
		if !remaining {
			incarnation.IncarnationStatus = pb.IncarnationStatus_INCARNATION_EXPUNGED
		}
	}
}

// latestStorageSelector addresses the newest version of a STORAGE object,
// the shape DATA and FILE definitions use for their back reference.
func latestStorageSelector(storageId string) *pb.TagSelector {
	return &pb.TagSelector{
		ObjectType:     pb.ObjectType_STORAGE,
		ObjectId:       storageId,
		ObjectCriteria: &pb.TagSelector_LatestObject{LatestObject: true},
		TagCriteria:    &pb.TagSelector_LatestTag{LatestTag: true},
	}
}
