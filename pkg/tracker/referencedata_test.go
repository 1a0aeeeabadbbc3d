package tracker

import (
	"context"
	"testing"

	"github.com/JaiBansal007/Marg-Gps/pkg/margdf"
	"github.com/JaiBansal007/Marg-Gps/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReferenceDataOneLookupPerKind(t *testing.T) {
	repository := store.NewMemory()
	repository.AddAsset(&margdf.Asset{PrimaryIdentifier: "TR-0001", Active: true})
	repository.AddAsset(&margdf.Asset{PrimaryIdentifier: "TR-0002", Active: true})
	repository.AddVendor(&margdf.Vendor{Name: "intellitrac", Active: true})

	pipeline := NewPipeline(repository, nil)

	references, err := pipeline.resolveReferenceData(context.Background(), []margdf.RawPing{
		{AssetIdentifier: "TR-0001", VendorIdentifier: "intellitrac"},
		{AssetIdentifier: "TR-0001", VendorIdentifier: "intellitrac"},
		{AssetIdentifier: "TR-0002", VendorIdentifier: "intellitrac"},
		{AssetIdentifier: "TR-9999", VendorIdentifier: "unheard-of"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repository.AssetLookups)
	assert.Equal(t, 1, repository.VendorLookups)
	assert.Equal(t, 1, repository.EquipmentLookups)

	assert.Len(t, references.Assets, 2)
	assert.Len(t, references.Vendors, 1)

	assert.Nil(t, references.Assets["TR-9999"])
	assert.Nil(t, references.Vendors["unheard-of"])
}
