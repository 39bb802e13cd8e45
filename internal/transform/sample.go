package transform

// sampleDocument is the document loaded by Sample.
const sampleDocument = `{
  "name": "John Doe",
  "age": 30,
  "email": "john.doe@example.com",
  "address": {
    "street": "123 Main St",
    "city": "San Francisco",
    "state": "CA",
    "zipCode": "94102",
    "coordinates": {
      "latitude": 37.7749,
      "longitude": -122.4194
    }
  },
  "phoneNumbers": [
    {
      "type": "home",
      "number": "555-1234"
    },
    {
      "type": "work",
      "number": "555-5678"
    }
  ],
  "preferences": {
    "notifications": {
      "email": true,
      "sms": false,
      "push": true
    },
    "privacy": {
      "shareData": false,
      "publicProfile": true
    }
  },
  "metadata": {
    "createdAt": "2025-01-15T10:30:00Z",
    "updatedAt": "2025-10-11T08:45:00Z",
    "version": "2.1.0"
  }
}`

// Sample returns a small pretty-printed document for trying out the
// transforms.
func Sample() string {
	return sampleDocument
}
