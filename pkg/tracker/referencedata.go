package tracker

import (
	"context"

	"github.com/JaiBansal007/Marg-Gps/pkg/margdf"
	"github.com/JaiBansal007/Marg-Gps/pkg/util"
	"github.com/sourcegraph/conc/pool"
)

type referenceData struct {
	Assets    map[string]*margdf.Asset
	Vendors   map[string]*margdf.Vendor
	Equipment map[string]*margdf.Equipment
}

// resolveReferenceData bulk loads the assets, vendors and equipment links a
// batch refers to. One round trip per entity kind, issued concurrently as
// the three lookups are independent. Keys that don't resolve are simply
// absent from the maps.
func (p *Pipeline) resolveReferenceData(ctx context.Context, pings []margdf.RawPing) (*referenceData, error) {
	assetIdentifiers := make([]string, 0, len(pings))
	vendorNames := make([]string, 0, len(pings))

	for _, ping := range pings {
		assetIdentifiers = append(assetIdentifiers, ping.AssetIdentifier)
		vendorNames = append(vendorNames, ping.VendorIdentifier)
	}

	assetIdentifiers = util.RemoveDuplicateStrings(assetIdentifiers, []string{})
	vendorNames = util.RemoveDuplicateStrings(vendorNames, []string{})

	references := &referenceData{}

	lookups := pool.New().WithErrors().WithContext(ctx)

	lookups.Go(func(ctx context.Context) error {
		assets, err := p.Repository.AssetsByIdentifiers(ctx, assetIdentifiers)
		references.Assets = assets

		return err
	})
	lookups.Go(func(ctx context.Context) error {
		vendors, err := p.Repository.VendorsByNames(ctx, vendorNames)
		references.Vendors = vendors

		return err
	})
	lookups.Go(func(ctx context.Context) error {
		equipment, err := p.Repository.EquipmentByAssets(ctx, assetIdentifiers)
		references.Equipment = equipment

		return err
	})

	if err := lookups.Wait(); err != nil {
		return nil, err
	}

	return references, nil
}
