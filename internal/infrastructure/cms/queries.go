package cms

// GraphQL operations consumed from the CMS backend. The field selections
// mirror the backend schema; none of these documents are generated.

const queryContentTypeBySlug = `
query GetContentTypeBySlug($slug: String!, $organizationId: ID!) {
  contentTypeBySlug(slug: $slug, organizationId: $organizationId) {
    id
    slug
    name
    fields {
      slug
      name
      type
      required
    }
  }
}`

const queryContentEntryBySlug = `
query GetContentEntryBySlug($slug: String!, $contentTypeId: ID!, $organizationId: ID!) {
  contentEntryBySlug(slug: $slug, contentTypeId: $contentTypeId, organizationId: $organizationId) {
    id
    slug
    data
    createdAt
    updatedAt
  }
}`

const queryContentEntry = `
query GetContentEntry($id: ID!) {
  contentEntry(id: $id) {
    id
    slug
    data
    createdAt
    updatedAt
  }
}`

const queryContentEntries = `
query GetContentEntries($contentTypeId: ID!, $organizationId: ID!) {
  contentEntries(contentTypeId: $contentTypeId, organizationId: $organizationId) {
    id
    slug
    data
  }
}`

const mutationLogin = `
mutation Login($input: LoginInput!) {
  login(input: $input) {
    accessToken
    refreshToken
    user {
      id
      email
    }
  }
}`

const mutationCreateContentType = `
mutation CreateContentType($input: CreateContentTypeInput!) {
  createContentType(input: $input) {
    id
    slug
    name
    fields {
      slug
      name
      type
      required
    }
  }
}`

const mutationCreateContentEntry = `
mutation CreateContentEntry($input: CreateContentEntryInput!) {
  createContentEntry(input: $input) {
    id
    slug
    data
  }
}`

const mutationUpdateContentEntry = `
mutation UpdateContentEntry($id: ID!, $input: UpdateContentEntryInput!) {
  updateContentEntry(id: $id, input: $input) {
    id
    slug
    data
    updatedAt
  }
}`

const mutationUploadMedia = `
mutation UploadMedia($input: UploadMediaInput!) {
  uploadMedia(input: $input) {
    id
    filename
    variants {
      original
      thumbnail
      medium
      large
    }
  }
}`
