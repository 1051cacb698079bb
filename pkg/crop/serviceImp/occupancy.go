package serviceImp

import (
	"farmhub/entities"
	"farmhub/pkg/apperr"
	repo "farmhub/pkg/crop/repository"
)

// syncBedStatus recomputes a bed's cached status from the growing crops on
// it. Every crop mutation that can change occupancy ends here.
//
// A bed is released only when its last growing crop leaves, so a second crop
// still on the bed keeps it occupied. A bed in preparation with no crops
// keeps that status.
func syncBedStatus(r repo.CropRepository, bedID uint) error {
	bed, err := r.FindBed(bedID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil
		}
		return err
	}
	n, err := r.CountGrowingOnBed(bedID)
	if err != nil {
		return err
	}

	want := bed.Status
	switch {
	case n > 0:
		want = entities.BedOccupied
	case bed.Status == entities.BedOccupied:
		want = entities.BedAvailable
	}
	if want == bed.Status {
		return nil
	}
	return r.SetBedStatus(bedID, want)
}
