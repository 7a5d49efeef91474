// Package orderxml writes and reads the Order-X XML representation of an
// order.
package orderxml

// Namespace URIs bound to the four prefixes of an Order-X message
const (
	NSMessage     = "urn:un:unece:uncefact:data:SCRDMCCBDACIOMessageStructure:100"
	NSAggregate   = "urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:128"
	NSUnqualified = "urn:un:unece:uncefact:data:standard:UnqualifiedDataType:128"
	NSQualified   = "urn:un:unece:uncefact:data:standard:QualifiedDataType:128"
)

// AttachmentName is the file name of the XML inside a hybrid PDF
const AttachmentName = "order-x.xml"
