package shasta

// Address represents a postal address attached to an organization or venue.
// The API accepts and returns a single free-form address line.
type Address struct {
	AddressLine string `json:"addressLine" yaml:"addressLine"`
}

// Organization represents a business organization under an MSP account.
type Organization struct {
	ID                int64    `json:"orgId"                       yaml:"orgId"`
	DisplayName       string   `json:"orgDisplayName"              yaml:"orgDisplayName"`
	TypeID            int64    `json:"orgTypeId"                   yaml:"orgTypeId"`
	ParentID          int64    `json:"parentOrgId"                 yaml:"parentOrgId"`
	Phone             string   `json:"phone,omitempty"             yaml:"phone,omitempty"`
	Notes             string   `json:"notes,omitempty"             yaml:"notes,omitempty"`
	BillingRecipients string   `json:"billingRecipients,omitempty" yaml:"billingRecipients,omitempty"`
	OrgAddress        *Address `json:"orgAddress,omitempty"        yaml:"orgAddress,omitempty"`
	BillingAddress    *Address `json:"billingAddress,omitempty"    yaml:"billingAddress,omitempty"`
	CreatedDate       string   `json:"createdDate,omitempty"       yaml:"createdDate,omitempty"`
	UpdatedDate       string   `json:"updatedDate,omitempty"       yaml:"updatedDate,omitempty"`
}

// OrganizationCreateRequest is the payload for creating an organization.
// The API requires the phone, notes, and billing recipient fields to be
// present even when empty, and applies the same address to both the
// organization and its billing record.
type OrganizationCreateRequest struct {
	DisplayName       string  `json:"orgDisplayName"    yaml:"orgDisplayName"`
	TypeID            int64   `json:"orgTypeId"         yaml:"orgTypeId"`
	ParentID          int64   `json:"parentOrgId"       yaml:"parentOrgId"`
	Phone             string  `json:"phone"             yaml:"phone"`
	Notes             string  `json:"notes"             yaml:"notes"`
	BillingRecipients string  `json:"billingRecipients" yaml:"billingRecipients"`
	OrgAddress        Address `json:"orgAddress"        yaml:"orgAddress"`
	BillingAddress    Address `json:"billingAddress"    yaml:"billingAddress"`
}

// NewOrganizationCreateRequest builds a create request with the single
// address applied to both the org and billing addresses.
func NewOrganizationCreateRequest(displayName string, typeID, parentID int64, address string) *OrganizationCreateRequest {
	addr := Address{AddressLine: address}

	return &OrganizationCreateRequest{
		DisplayName:    displayName,
		TypeID:         typeID,
		ParentID:       parentID,
		OrgAddress:     addr,
		BillingAddress: addr,
	}
}

// Venue represents a physical site belonging to an organization.
type Venue struct {
	ID              int64    `json:"venueId"                   yaml:"venueId"`
	OrgID           int64    `json:"orgId"                     yaml:"orgId"`
	ParentVenueID   int64    `json:"parentVenueId"             yaml:"parentVenueId"`
	Name            string   `json:"venueName"                 yaml:"venueName"`
	State           int      `json:"state"                     yaml:"state"`
	VenueType       int      `json:"venueType"                 yaml:"venueType"`
	VenueAddress    *Address `json:"venueAddress,omitempty"    yaml:"venueAddress,omitempty"`
	ShippingAddress *Address `json:"shippingAddress,omitempty" yaml:"shippingAddress,omitempty"`
	CreatedDate     string   `json:"createdDate,omitempty"     yaml:"createdDate,omitempty"`
	UpdatedDate     string   `json:"updatedDate,omitempty"     yaml:"updatedDate,omitempty"`
}

// Venue state and type values accepted by the API on create.
const (
	VenueStateActive    = 1
	VenueTypeStandalone = 1
	RootParentVenueID   = 0
	InfraSourceManual   = 1
)

// VenueCreateRequest is the payload for creating a venue. New venues are
// created as active standalone venues at the venue-tree root, with the one
// address applied to both the venue and shipping records.
type VenueCreateRequest struct {
	OrgID           int64   `json:"orgId"           yaml:"orgId"`
	ParentVenueID   int64   `json:"parentVenueId"   yaml:"parentVenueId"`
	Name            string  `json:"venueName"       yaml:"venueName"`
	State           int     `json:"state"           yaml:"state"`
	VenueType       int     `json:"venueType"       yaml:"venueType"`
	VenueAddress    Address `json:"venueAddress"    yaml:"venueAddress"`
	ShippingAddress Address `json:"shippingAddress" yaml:"shippingAddress"`
}

// NewVenueCreateRequest builds a venue create request with the API's fixed
// defaults for state, type, and parent.
func NewVenueCreateRequest(orgID int64, name, address string) *VenueCreateRequest {
	addr := Address{AddressLine: address}

	return &VenueCreateRequest{
		OrgID:           orgID,
		ParentVenueID:   RootParentVenueID,
		Name:            name,
		State:           VenueStateActive,
		VenueType:       VenueTypeStandalone,
		VenueAddress:    addr,
		ShippingAddress: addr,
	}
}

// Infrastructure represents a managed network device tied to an
// organization and venue.
type Infrastructure struct {
	ID           int64  `json:"infraId"                yaml:"infraId"`
	VenueID      int64  `json:"venueId"                yaml:"venueId"`
	OrgID        int64  `json:"orgId"                  yaml:"orgId"`
	InfraTypeID  int64  `json:"infraTypeId"            yaml:"infraTypeId"`
	MACAddress   string `json:"macAddress"             yaml:"macAddress"`
	SerialNumber string `json:"serialNumber,omitempty" yaml:"serialNumber,omitempty"`
	AssetTag     string `json:"assetTag,omitempty"     yaml:"assetTag,omitempty"`
	DisplayName  string `json:"infraDisplayName"       yaml:"infraDisplayName"`
	SourceID     int    `json:"sourceId"               yaml:"sourceId"`
	RealInfra    bool   `json:"realInfra"              yaml:"realInfra"`
	CreatedDate  string `json:"createdDate,omitempty"  yaml:"createdDate,omitempty"`
}

// InfrastructureCreateRequest is the payload for registering an infra
// record. Serial number and asset tag are required by the API but may be
// empty; sourceId and realInfra carry fixed values for manually registered
// placeholder devices.
type InfrastructureCreateRequest struct {
	VenueID      int64  `json:"venueId"          yaml:"venueId"`
	OrgID        int64  `json:"orgId"            yaml:"orgId"`
	InfraTypeID  int64  `json:"infraTypeId"      yaml:"infraTypeId"`
	MACAddress   string `json:"macAddress"       yaml:"macAddress"`
	SerialNumber string `json:"serialNumber"     yaml:"serialNumber"`
	AssetTag     string `json:"assetTag"         yaml:"assetTag"`
	DisplayName  string `json:"infraDisplayName" yaml:"infraDisplayName"`
	SourceID     int    `json:"sourceId"         yaml:"sourceId"`
	RealInfra    bool   `json:"realInfra"        yaml:"realInfra"`
}

// NewInfrastructureCreateRequest builds an infra create request with the
// API's fixed source and placeholder flags.
func NewInfrastructureCreateRequest(orgID, venueID, infraTypeID int64, macAddress, displayName string) *InfrastructureCreateRequest {
	return &InfrastructureCreateRequest{
		VenueID:     venueID,
		OrgID:       orgID,
		InfraTypeID: infraTypeID,
		MACAddress:  macAddress,
		DisplayName: displayName,
		SourceID:    InfraSourceManual,
		RealInfra:   false,
	}
}

// InfraType describes a class of infrastructure device available to an
// organization.
type InfraType struct {
	ID          int64  `json:"infraTypeId"           yaml:"infraTypeId"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ListResponse represents a paginated list response.
type ListResponse[T any] struct {
	TotalCount int `json:"totalCount" yaml:"totalCount"`
	Data       []T `json:"data"       yaml:"data"`
}

// OrganizationList is a paginated list of Organization resources.
type OrganizationList = ListResponse[Organization]

// VenueList is a paginated list of Venue resources.
type VenueList = ListResponse[Venue]

// InfrastructureList is a paginated list of Infrastructure resources.
type InfrastructureList = ListResponse[Infrastructure]

// InfraTypeList is a paginated list of InfraType resources.
type InfraTypeList = ListResponse[InfraType]
