// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

const sampleFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:opensearch="http://a9.com/-/spec/opensearch/1.1/" xmlns:arxiv="http://arxiv.org/schemas/atom">
  <title type="html">ArXiv Query: search_query=cat:math.*&amp;id_list=&amp;start=0&amp;max_results=2</title>
  <id>http://arxiv.org/api/abc123</id>
  <updated>2024-01-01T00:00:00-05:00</updated>
  <opensearch:totalResults>2</opensearch:totalResults>
  <opensearch:startIndex>0</opensearch:startIndex>
  <opensearch:itemsPerPage>2</opensearch:itemsPerPage>
  <entry>
    <id>http://arxiv.org/abs/2106.00001v1</id>
    <updated>2021-06-01T00:00:00Z</updated>
    <published>2021-06-01T00:00:00Z</published>
    <title>On the Cohomology of
  Something Interesting</title>
    <summary>  We prove a theorem.
This is the second line of the abstract.
</summary>
    <author>
      <name>Ada Lovelace</name>
    </author>
    <author>
      <name>Emmy Noether</name>
    </author>
    <link href="http://arxiv.org/abs/2106.00001v1" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/2106.00001v1" rel="related" type="application/pdf"/>
    <arxiv:primary_category term="math.AG" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2106.00002v2</id>
    <updated>2021-06-02T00:00:00Z</updated>
    <title>A Short Note</title>
    <summary>Abstract with, a comma and "quotes".</summary>
  </entry>
</feed>`

const emptyFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:opensearch="http://a9.com/-/spec/opensearch/1.1/">
  <title type="html">ArXiv Query: search_query=cat:math.*&amp;id_list=&amp;start=2&amp;max_results=2</title>
  <id>http://arxiv.org/api/def456</id>
  <updated>2024-01-01T00:00:00-05:00</updated>
  <opensearch:totalResults>2</opensearch:totalResults>
  <opensearch:startIndex>2</opensearch:startIndex>
  <opensearch:itemsPerPage>2</opensearch:itemsPerPage>
</feed>`
