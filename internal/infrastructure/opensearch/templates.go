// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package opensearch

const queryProductSource = `{
  "size": {{ .PageSize }},
  {{- if not .SearchAfter }}
  "from": {{ .From }},
  {{- end }}
  "query": {
    "bool": {
      "must": [
        {
          "term": {"enabled": true}
        }
        {{- if .TaxonCode }},
        {
          "nested": {
            "path": "taxons",
            "query": {
              "term": {
                "taxons.code": {{ .TaxonCode | quote }}
              }
            }
          }
        }
        {{- end }}
        {{- if .Phrase }},
        {
          "multi_match": {
            "query": {{ .Phrase | quote }},
            "type": "most_fields",
            "fields": [
              "name",
              "name.autocomplete",
              "description"
            ]
          }
        }
        {{- end }}
      ]
    }
  }
  {{- if .SearchAfter }},
  "search_after": {{ .SearchAfter }}
  {{- end }}
  {{- if .Aggregations }},
  "aggs": {{ .Aggregations }}
  {{- end }},
  "sort": [
    {
      {{ .SortBy | quote }}: {
        "order": {{ .SortOrder | quote }}
      }
    },
    {"_id": "asc"}
  ]
}`
